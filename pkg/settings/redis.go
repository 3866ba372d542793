package settings

// RedisConfig is the cache backend view of the settings.
type RedisConfig struct {
	URL             string
	DecodeResponses bool
	MaxConnections  int
}
