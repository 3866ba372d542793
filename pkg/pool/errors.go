package pool

import "errors"

var (
	ErrConnectFailed     = errors.New("failed to connect client")
	ErrPoolClosed        = errors.New("client pool is closed")
	ErrHealthcheckFailed = errors.New("client pool healthcheck failed")
	ErrNilDriver         = errors.New("client pool driver is nil")
)
