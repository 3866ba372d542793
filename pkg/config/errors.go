package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when one of the requested .env files cannot be read
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrNilInitializer is returned by Lazy.Get when the holder was built without an init func
	ErrNilInitializer = errors.New("lazy value has no initializer")
)
