package settings

import "errors"

var (
	// ErrInvalidConfiguration is the single configuration error kind. Every
	// failure returned by Load, NewCredentials and Default matches it.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrMissingCredentials is joined with ErrInvalidConfiguration when one
	// of the document store credential fields is empty.
	ErrMissingCredentials = errors.New("missing firebase credentials in configuration")
)
