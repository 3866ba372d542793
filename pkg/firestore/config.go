package firestore

import (
	"time"

	"github.com/acdih/synaptic/pkg/config"
	"github.com/acdih/synaptic/pkg/pool"
)

// Config holds the client pool policy. Credentials and the endpoint come from settings.
type Config struct {
	RetryAttempts         int           `env:"FIRESTORE_RETRY_ATTEMPTS" envDefault:"3"`                    // RetryAttempts is the number of dial attempts per reconnect.
	RetryInterval         time.Duration `env:"FIRESTORE_RETRY_INTERVAL" envDefault:"2s"`                   // RetryInterval is the base backoff between attempts.
	ConnectTimeout        time.Duration `env:"FIRESTORE_CONNECT_TIMEOUT" envDefault:"10s"`                 // ConnectTimeout bounds one reconnect, all attempts included.
	HealthCheckTimeout    time.Duration `env:"FIRESTORE_HEALTHCHECK_TIMEOUT" envDefault:"5s"`              // HealthCheckTimeout bounds a single health read.
	HealthCheckInterval   time.Duration `env:"FIRESTORE_HEALTHCHECK_INTERVAL" envDefault:"30s"`            // HealthCheckInterval is how long a successful health read is trusted.
	HealthCheckCollection string        `env:"FIRESTORE_HEALTHCHECK_COLLECTION" envDefault:"_healthcheck"` // HealthCheckCollection holds the document read by health checks.
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	return config.Parse[Config](nil)
}

func (c Config) poolConfig() pool.Config {
	return pool.Config{
		RetryAttempts:       c.RetryAttempts,
		RetryInterval:       c.RetryInterval,
		HealthCheckTimeout:  c.HealthCheckTimeout,
		HealthCheckInterval: c.HealthCheckInterval,
		ConnectTimeout:      c.ConnectTimeout,
	}
}
