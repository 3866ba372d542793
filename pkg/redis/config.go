package redis

import (
	"errors"
	"time"

	"github.com/acdih/synaptic/pkg/config"
	"github.com/acdih/synaptic/pkg/settings"
)

type Config struct {
	// ConnectionURL comes from settings.RedisConfig.URL, e.g. "redis://:password@localhost:6379/0".
	ConnectionURL string
	// MaxConnections is the client pool size, from settings.RedisConfig.MaxConnections.
	MaxConnections int

	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // RetryAttempts is the number of retry attempts to connect to the database.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`   // RetryInterval is the interval between retry attempts, e.g. "5s".
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"` // ConnectTimeout bounds the whole connect loop, e.g. "30s".
}

// NewConfig combines the settings projection with retry options read from
// the process environment.
func NewConfig(rc settings.RedisConfig) (Config, error) {
	if rc.URL == "" {
		return Config{}, ErrEmptyConnectionURL
	}

	cfg, err := config.Parse[Config](nil)
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	cfg.ConnectionURL = rc.URL
	cfg.MaxConnections = rc.MaxConnections
	return cfg, nil
}
