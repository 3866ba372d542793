package pool

import (
	"log/slog"
	"time"
)

// Config holds the reconnection and health-check policy of a Pool.
type Config struct {
	RetryAttempts       int           // RetryAttempts is the number of dial attempts per reconnect. Values below 1 mean 1.
	RetryInterval       time.Duration // RetryInterval is the base backoff; attempt n waits n*RetryInterval before the next one.
	HealthCheckTimeout  time.Duration // HealthCheckTimeout bounds a single Ping. Zero means no extra timeout.
	HealthCheckInterval time.Duration // HealthCheckInterval is how long a successful Ping is trusted. Zero pings on every Get.
	ConnectTimeout      time.Duration // ConnectTimeout bounds one shared reconnect, all attempts included. Zero means attempts alone bound it.
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	cfg  Config
	log  *slog.Logger
	name string
	now  func() time.Time
}

func defaultOptions() *options {
	return &options{
		cfg: Config{
			RetryAttempts:       3,
			RetryInterval:       time.Second,
			HealthCheckTimeout:  5 * time.Second,
			HealthCheckInterval: 30 * time.Second,
			ConnectTimeout:      30 * time.Second,
		},
		name: "pool",
		now:  time.Now,
	}
}

// WithConfig replaces the whole policy.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithRetry sets the number of dial attempts and the base backoff interval.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		o.cfg.RetryAttempts = attempts
		o.cfg.RetryInterval = interval
	}
}

// WithHealthCheck sets the ping timeout and how long a successful ping is trusted.
func WithHealthCheck(timeout, interval time.Duration) Option {
	return func(o *options) {
		o.cfg.HealthCheckTimeout = timeout
		o.cfg.HealthCheckInterval = interval
	}
}

// WithConnectTimeout bounds a shared reconnect independently of the callers waiting on it.
func WithConnectTimeout(d time.Duration) Option {
	return func(o *options) { o.cfg.ConnectTimeout = d }
}

// WithLogger sets the logger. Nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithName sets the component name used in log records.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithClock overrides time.Now. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
