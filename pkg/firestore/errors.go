package firestore

import "errors"

var (
	ErrInvalidDatabaseURL     = errors.New("invalid firestore database url")
	ErrInvalidCredentials     = errors.New("invalid firestore credentials")
	ErrFailedToCreateClient   = errors.New("failed to create firestore client")
	ErrHealthcheckFailed      = errors.New("firestore healthcheck failed")
	ErrFailedToConnectToStore = errors.New("failed to connect to firestore")
)
