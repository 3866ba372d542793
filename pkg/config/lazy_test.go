package config_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acdih/synaptic/pkg/config"
)

type service struct{ name string }

func TestLazy_ReturnsSameInstance(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	lazy := config.NewLazy(func() (*service, error) {
		calls.Add(1)
		return &service{name: "svc"}, nil
	})

	first, err := lazy.Get()
	require.NoError(t, err)

	for range 100 {
		got, err := lazy.Get()
		require.NoError(t, err)
		assert.Same(t, first, got)
	}
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, lazy.Loaded())
}

func TestLazy_ConcurrentFirstAccess(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	lazy := config.NewLazy(func() (*service, error) {
		calls.Add(1)
		return &service{name: "svc"}, nil
	})

	const callers = 16
	results := make([]*service, callers)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			v, err := lazy.Get()
			assert.NoError(t, err)
			results[i] = v
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestLazy_FailureIsNotCached(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	fail := true
	lazy := config.NewLazy(func() (*service, error) {
		if fail {
			return nil, errBoom
		}
		return &service{name: "recovered"}, nil
	})

	v, err := lazy.Get()
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, v)
	assert.False(t, lazy.Loaded())

	fail = false
	v, err = lazy.Get()
	require.NoError(t, err)
	assert.Equal(t, "recovered", v.name)
	assert.True(t, lazy.Loaded())
}

func TestLazy_Reset(t *testing.T) {
	t.Parallel()

	lazy := config.NewLazy(func() (*service, error) {
		return &service{}, nil
	})

	first, err := lazy.Get()
	require.NoError(t, err)

	lazy.Reset()
	assert.False(t, lazy.Loaded())

	second, err := lazy.Get()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestLazy_NilInitializer(t *testing.T) {
	t.Parallel()

	var lazy config.Lazy[*service]
	_, err := lazy.Get()
	assert.ErrorIs(t, err, config.ErrNilInitializer)
}
