// Package httpserver wraps net/http with context-driven graceful shutdown,
// environment-driven timeouts and a liveness/readiness handler.
//
//	cfg, _ := httpserver.LoadConfig()
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Get("/health/live", httpserver.HealthCheckHandler(log))
//	r.Get("/health/ready", httpserver.HealthCheckHandler(log, clients.Healthcheck(), redis.Healthcheck(rdb)))
//
//	if err := srv.Run(ctx, r); err != nil {
//	    // errors.Is(err, httpserver.ErrStart)
//	}
//
// Run blocks until ctx is cancelled (typically by signal.NotifyContext) or
// Shutdown is called, then drains connections for at most ShutdownTimeout.
package httpserver
