package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/acdih/synaptic/pkg/config"
	"github.com/acdih/synaptic/pkg/firestore"
	"github.com/acdih/synaptic/pkg/httpserver"
	"github.com/acdih/synaptic/pkg/logger"
	"github.com/acdih/synaptic/pkg/redis"
	"github.com/acdih/synaptic/pkg/settings"
)

const serviceName = "synaptic"

func main() {
	config.LoadDefaultEnv()

	// Until settings are known, log to stderr at the default level.
	logger.SetAsDefault(logger.New(logger.WithOutput(os.Stderr), logger.WithService(serviceName)))

	if err := run(); err != nil {
		slog.Error("synaptic stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := settings.Default()
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg.Settings())
	if err != nil {
		return err
	}
	defer closeLog()
	logger.SetAsDefault(log)

	fc, err := firestore.LoadConfig()
	if err != nil {
		return err
	}
	clients, err := firestore.NewPool(cfg, fc, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := clients.Close(); err != nil {
			log.Error("failed to close firestore client", logger.Error(err))
		}
	}()

	warmCtx, cancel := context.WithTimeout(ctx, fc.ConnectTimeout)
	_, err = clients.Get(warmCtx)
	cancel()
	if err != nil {
		return errors.Join(firestore.ErrFailedToConnectToStore, err)
	}

	rc, err := redis.NewConfig(cfg.RedisConfig())
	if err != nil {
		return err
	}
	rdb, err := redis.Connect(ctx, rc)
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error("failed to close redis client", logger.Error(err))
		}
	}()

	srvCfg, err := httpserver.LoadConfig()
	if err != nil {
		return err
	}
	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))

	return srv.Run(ctx, newRouter(log, clients.Healthcheck(), redis.Healthcheck(rdb)))
}

func newRouter(log *slog.Logger, checks ...func(context.Context) error) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, checks...))
	return r
}

// newLogger writes to stdout and, when LOG_FILE is set, appends to that file.
func newLogger(s settings.Settings) (*slog.Logger, func(), error) {
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	outputs := []io.Writer{os.Stdout}
	closeFn := func() {}
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		outputs = append(outputs, f)
		closeFn = func() { _ = f.Close() }
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithOutputs(outputs...),
		logger.WithService(serviceName),
	), closeFn, nil
}
