package settings

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/acdih/synaptic/pkg/validator"
)

const fallbackMaxWorkers = 4

// Settings is the configuration snapshot read from the environment.
// It is a plain value: copies handed out by Config cannot affect the original.
type Settings struct {
	// Firestore credentials and endpoint.
	FirebaseProjectID    string `env:"FIREBASE_PROJECT_ID,required"`
	FirebasePrivateKey   string `env:"FIREBASE_PRIVATE_KEY,required"`
	FirebaseClientEmail  string `env:"FIREBASE_CLIENT_EMAIL,required"`
	FirestoreDatabaseURL string `env:"FIRESTORE_DATABASE_URL" envDefault:"https://firestore.googleapis.com"`

	// Graph limits, passed through to graph consumers.
	MaxGraphNodes int `env:"MAX_GRAPH_NODES" envDefault:"1000000"`
	MaxGraphEdges int `env:"MAX_GRAPH_EDGES" envDefault:"5000000"`
	GraphCacheTTL int `env:"GRAPH_CACHE_TTL" envDefault:"300"` // seconds

	// Discovery tuning. Both thresholds must lie in [0, 1].
	CausalConfidenceThreshold float64 `env:"CAUSAL_CONFIDENCE_THRESHOLD" envDefault:"0.8"`
	CorrelationThreshold      float64 `env:"CORRELATION_THRESHOLD" envDefault:"0.7"`
	DiscoveryBatchSize        int     `env:"DISCOVERY_BATCH_SIZE" envDefault:"1000"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFile  string `env:"LOG_FILE" envDefault:"acdih_synaptic.log"`

	// MaxWorkers defaults to the CPU count when unset or zero.
	MaxWorkers int    `env:"MAX_WORKERS"`
	RedisURL   string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
}

// applyDefaults fills values whose default is only known at runtime.
func (s *Settings) applyDefaults() {
	if s.MaxWorkers == 0 {
		s.MaxWorkers = defaultMaxWorkers()
	}
}

func defaultMaxWorkers() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return fallbackMaxWorkers
}

// Validate checks the invariants of the snapshot and reports every
// violation at once as validator.ValidationErrors.
func (s Settings) Validate() error {
	return validator.Apply(
		validator.InRange("causal_confidence_threshold", s.CausalConfidenceThreshold, 0, 1),
		validator.InRange("correlation_threshold", s.CorrelationThreshold, 0, 1),
		validator.MinNum("max_workers", s.MaxWorkers, 1),
	)
}

// GraphCacheTTLDuration returns GraphCacheTTL as a time.Duration.
func (s Settings) GraphCacheTTLDuration() time.Duration {
	return time.Duration(s.GraphCacheTTL) * time.Second
}

// RedisConfig projects the cache backend settings. No I/O is performed.
func (s Settings) RedisConfig() RedisConfig {
	return RedisConfig{
		URL:             s.RedisURL,
		DecodeResponses: true,
		MaxConnections:  s.MaxWorkers * 2,
	}
}

// LogValue keeps the private key out of log output.
func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("firebase_project_id", s.FirebaseProjectID),
		slog.String("firebase_private_key", redacted(s.FirebasePrivateKey)),
		slog.String("firebase_client_email", s.FirebaseClientEmail),
		slog.String("firestore_database_url", s.FirestoreDatabaseURL),
		slog.Int("max_graph_nodes", s.MaxGraphNodes),
		slog.Int("max_graph_edges", s.MaxGraphEdges),
		slog.Int("graph_cache_ttl", s.GraphCacheTTL),
		slog.Float64("causal_confidence_threshold", s.CausalConfidenceThreshold),
		slog.Float64("correlation_threshold", s.CorrelationThreshold),
		slog.Int("discovery_batch_size", s.DiscoveryBatchSize),
		slog.String("log_level", s.LogLevel),
		slog.String("log_file", s.LogFile),
		slog.Int("max_workers", s.MaxWorkers),
		slog.String("redis_url", s.RedisURL),
	)
}

func redacted(secret string) string {
	if secret == "" {
		return ""
	}
	return "[REDACTED]"
}
