package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadEnv loads variables from the given .env files into the process
// environment. With no paths it loads ".env" from the working directory.
// Variables that are already set are never overwritten, so the real process
// environment always wins over file values; among files the first one wins.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// LoadDefaultEnv loads the default .env file at most once per process.
// A missing file is not an error.
func LoadDefaultEnv() {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
}

// Parse populates a new T from environment variables using `env` and
// `envDefault` struct tags.
//
// When environ is nil the process environment is used; otherwise only the
// given map is consulted, which keeps parsing a pure function of its input.
//
// Example:
//
//	type RedisConfig struct {
//		URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//	}
//
//	cfg, err := config.Parse[RedisConfig](nil)
func Parse[T any](environ map[string]string) (T, error) {
	var v T
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&v, opts); err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

// MustParse works like Parse on the process environment but panics if parsing fails.
func MustParse[T any]() T {
	v, err := Parse[T](nil)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return v
}
