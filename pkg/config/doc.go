// Package config provides small, type-safe helpers for reading application
// configuration from the environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv / MustLoadEnv read one or more `.env` files into the process
//     environment without overriding variables that are already set.
//   - LoadDefaultEnv loads the default `.env` at most once per process.
//   - Parse / MustParse build any struct annotated with `env` tags, either
//     from the process environment or from an explicit map.
//   - Lazy is a mutex-guarded holder for values that should be built once and
//     shared by the whole process.
//
// # Usage
//
//	type DatabaseConfig struct {
//	    URL  string `env:"DATABASE_URL,required"`
//	    Pool int    `env:"DATABASE_POOL" envDefault:"10"`
//	}
//
//	config.LoadDefaultEnv()
//	db, err := config.Parse[DatabaseConfig](nil)
//	if err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// A process-wide value built lazily:
//
//	var shared = config.NewLazy(func() (*Service, error) {
//	    cfg, err := config.Parse[DatabaseConfig](nil)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewService(cfg), nil
//	})
//
//	svc, err := shared.Get()
//
// # Lazy vs sync.Once
//
// Lazy does not remember failures. If the initializer returns an error, no
// value is cached and the following Get tries again from scratch, so a
// process can recover once its environment is fixed.
//
// # Error Handling
//
//   - `ErrParsingConfig` – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file is unreadable.
//   - `ErrNilInitializer` – Lazy built without an init function.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
