// Package pool keeps a single, lazily created client to a remote service and
// replaces it when it stops answering.
//
// A Pool is generic over the client type and talks to the service through a
// Driver, which knows how to Dial, Ping and Close a client. The pool policy is
// intentionally small:
//
//   - At most one live client per Pool, created on the first Get.
//   - Get returns the cached client when it is healthy. A successful Ping is
//     trusted for HealthCheckInterval; with a zero interval every Get pings.
//   - A client that fails its Ping is closed and a new one is dialed.
//     Callers that observe a broken connection can call Invalidate.
//   - Dialing makes at most RetryAttempts tries with linear backoff
//     (attempt n waits n*RetryInterval) and stops when the context is done.
//     Each attempt dials and pings; a client that fails the ping is closed
//     and never handed out. When every attempt fails nothing is cached and
//     the next Get starts over.
//   - Concurrent reconnects share one dial (golang.org/x/sync/singleflight).
//     The shared dial ignores the cancellation of whichever caller started
//     it and is bounded by ConnectTimeout; a caller whose ctx ends first
//     gets ErrConnectFailed joined with ctx.Err() while the dial goes on
//     for the others.
//
// # Usage
//
//	p := pool.New[*firestore.Client](driver,
//	    pool.WithRetry(3, 2*time.Second),
//	    pool.WithHealthCheck(5*time.Second, 30*time.Second),
//	    pool.WithLogger(log),
//	)
//	defer p.Close()
//
//	client, err := p.Get(ctx)
//	if err != nil {
//	    return err // errors.Is(err, pool.ErrConnectFailed)
//	}
//
//	readiness := p.Healthcheck()
//
// # Errors
//
//   - ErrConnectFailed – every dial attempt failed; joined with the last error.
//   - ErrPoolClosed – Get after Close.
//   - ErrHealthcheckFailed – returned by the Healthcheck func.
//   - ErrNilDriver – the pool was built without a driver.
package pool
