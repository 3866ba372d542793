package firestore

import (
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/acdih/synaptic/pkg/logger"
	"github.com/acdih/synaptic/pkg/pool"
	"github.com/acdih/synaptic/pkg/settings"
)

// NewPool returns a lazily connecting Firestore client pool built from the
// loaded configuration. No network call is made until the first Get.
func NewPool(cfg *settings.Config, fc Config, log *slog.Logger, opts ...option.ClientOption) (*pool.Pool[*firestore.Client], error) {
	drv, err := NewDriver(cfg.Credentials(), cfg.Settings().FirestoreDatabaseURL, fc, opts...)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Noop()
	}

	return pool.New[*firestore.Client](drv,
		pool.WithConfig(fc.poolConfig()),
		pool.WithName("firestore"),
		pool.WithLogger(log.With(logger.ProjectID(cfg.Credentials().ProjectID))),
	), nil
}
