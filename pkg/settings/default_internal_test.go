package settings

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acdih/synaptic/pkg/logger"
)

func TestDefault_ConstructsOnce(t *testing.T) {
	env := map[string]string{
		"FIREBASE_PROJECT_ID":   "p",
		"FIREBASE_PRIVATE_KEY":  PrivateKeyHeader,
		"FIREBASE_CLIENT_EMAIL": "svc@p.iam.gserviceaccount.com",
	}

	var loads atomic.Int32
	prev := defaultHandle
	defaultHandle = newHandle(func() (*Config, error) {
		loads.Add(1)
		return Load(WithEnviron(env), WithLogger(logger.Noop()))
	})
	t.Cleanup(func() { defaultHandle = prev })

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Default()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for range 100 {
		_, _ = Default()
	}
	assert.Equal(t, int32(1), loads.Load())
}
