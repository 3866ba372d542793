package settings

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/acdih/synaptic/pkg/config"
	"github.com/acdih/synaptic/pkg/logger"
)

// Config is a loaded, validated Settings snapshot together with the
// Credentials derived from it. It has no mutating methods.
type Config struct {
	settings    Settings
	credentials Credentials
}

// Settings returns a copy of the snapshot.
func (c *Config) Settings() Settings { return c.settings }

// Credentials returns a copy of the derived credentials.
func (c *Config) Credentials() Credentials { return c.credentials }

// RedisConfig returns {url, decode_responses: true, max_connections: 2*max_workers}.
func (c *Config) RedisConfig() RedisConfig { return c.settings.RedisConfig() }

// Option configures Load.
type Option func(*options)

type options struct {
	log     *slog.Logger
	environ map[string]string
}

// WithLogger sets the logger used for load messages. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithEnviron reads variables from m instead of the process environment.
func WithEnviron(m map[string]string) Option {
	return func(o *options) {
		if m != nil {
			o.environ = m
		}
	}
}

// Load reads the environment, applies defaults, validates the snapshot and
// derives the credentials. It either returns a complete Config or an error
// matching ErrInvalidConfiguration; partial results are never returned.
func Load(opts ...Option) (*Config, error) {
	o := &options{log: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	log := o.log.With(logger.Component("settings"))

	cfg, err := load(o.environ, log)
	if err != nil {
		log.Error("failed to load configuration", logger.Error(err))
		return nil, err
	}

	log.Info("configuration loaded", logger.ProjectID(cfg.credentials.ProjectID))
	return cfg, nil
}

func load(environ map[string]string, log *slog.Logger) (*Config, error) {
	s, err := config.Parse[Settings](foldNames(environ))
	if err != nil {
		return nil, errors.Join(ErrInvalidConfiguration, err)
	}
	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidConfiguration, err)
	}

	creds, err := NewCredentials(s, log)
	if err != nil {
		return nil, err
	}

	return &Config{settings: s, credentials: creds}, nil
}

// foldNames makes variable names case-insensitive by keying every value by
// its upper-case name. An exact upper-case name wins over other spellings.
// A nil environ means the process environment.
func foldNames(environ map[string]string) map[string]string {
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	out := make(map[string]string, len(environ))
	for k, v := range environ {
		if k == strings.ToUpper(k) {
			out[k] = v
		}
	}
	for k, v := range environ {
		upper := strings.ToUpper(k)
		if _, ok := out[upper]; !ok {
			out[upper] = v
		}
	}
	return out
}
