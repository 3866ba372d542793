package settings

import (
	"fmt"

	"github.com/acdih/synaptic/pkg/config"
)

var defaultHandle = newHandle(func() (*Config, error) {
	config.LoadDefaultEnv()
	return Load()
})

func newHandle(load func() (*Config, error)) *config.Lazy[*Config] {
	return config.NewLazy(load)
}

// Default returns the process-wide Config, loading it on first access.
//
// The default .env file is read once before the first load. Later calls
// return the same *Config without touching the environment again. A failed
// load is not cached: the error goes to the caller that triggered it and the
// next call loads from scratch.
//
// Prefer calling Load once at startup and passing the result to consumers;
// Default exists for code that cannot be handed a Config.
func Default() (*Config, error) {
	return defaultHandle.Get()
}

// MustDefault works like Default but panics on failure.
func MustDefault() *Config {
	cfg, err := Default()
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// DefaultLoaded reports whether the process-wide Config is cached.
func DefaultLoaded() bool {
	return defaultHandle.Loaded()
}

// ResetDefault drops the process-wide Config. Intended for tests.
func ResetDefault() {
	defaultHandle.Reset()
}
