// Package logger builds *slog.Logger instances from functional options and
// offers attribute helpers that keep key names consistent.
//
// # Usage
//
//	level, err := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
//	log := logger.New(
//	    logger.WithLevel(level),
//	    logger.WithTextFormatter(),
//	    logger.WithOutputs(os.Stdout, logFile),
//	    logger.WithService("synaptic"),
//	)
//	logger.SetAsDefault(log)
//
//	log.Warn("reconnecting", logger.Component("pool"), logger.Attempt(2), logger.Error(err))
//
// ParseLevel understands DEBUG, INFO, WARN/WARNING, ERROR and CRITICAL/FATAL
// in any case. Noop returns a logger that drops everything, used by packages
// when no logger is supplied.
package logger
