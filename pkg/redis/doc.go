// Package redis connects to the cache backend described by
// settings.RedisConfig using github.com/redis/go-redis/v9.
//
// The settings projection supplies the URL and the pool size
// (max_connections = 2 * MAX_WORKERS); retry behavior comes from
// REDIS_RETRY_ATTEMPTS, REDIS_RETRY_INTERVAL and REDIS_CONNECT_TIMEOUT.
//
// # Usage
//
//	rcfg, err := redis.NewConfig(cfg.RedisConfig())
//	if err != nil {
//	    return err
//	}
//	client, err := redis.Connect(ctx, rcfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	ready := redis.Healthcheck(client)
//
// go-redis always returns strings for string replies, so the projection's
// DecodeResponses flag needs no client option.
//
// # Errors
//
// Sentinel errors (ErrRedisNotReady, ErrFailedToParseRedisConnString, ...)
// are joined with the underlying go-redis error using errors.Join.
package redis
