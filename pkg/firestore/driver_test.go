package firestore_test

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/acdih/synaptic/pkg/firestore"
)

// fakeFirestore answers every document read with a configurable status code.
type fakeFirestore struct {
	firestorepb.UnimplementedFirestoreServer
	code  atomic.Uint32
	reads atomic.Int32
}

func (f *fakeFirestore) BatchGetDocuments(_ *firestorepb.BatchGetDocumentsRequest, _ firestorepb.Firestore_BatchGetDocumentsServer) error {
	f.reads.Add(1)
	return status.Error(codes.Code(f.code.Load()), "fake firestore")
}

func (f *fakeFirestore) respond(code codes.Code) {
	f.code.Store(uint32(code))
}

// startFakeFirestore serves fake on a local port and points the SDK at it
// through the emulator variable.
func startFakeFirestore(t *testing.T) *fakeFirestore {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	fake := &fakeFirestore{}
	srv := grpc.NewServer()
	firestorepb.RegisterFirestoreServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	t.Setenv(firestore.EmulatorHostEnv, lis.Addr().String())
	return fake
}

func TestDriver_Ping(t *testing.T) {
	fake := startFakeFirestore(t)

	drv, err := firestore.NewDriver(testCredentials(), firestore.DefaultDatabaseURL, firestore.Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := drv.Dial(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = drv.Close(client) })

	t.Run("missing document is healthy", func(t *testing.T) {
		fake.respond(codes.NotFound)
		assert.NoError(t, drv.Ping(ctx, client))
	})

	t.Run("unavailable fails", func(t *testing.T) {
		fake.respond(codes.Unavailable)
		err := drv.Ping(ctx, client)
		require.ErrorIs(t, err, firestore.ErrHealthcheckFailed)
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})

	t.Run("permission denied fails", func(t *testing.T) {
		fake.respond(codes.PermissionDenied)
		assert.ErrorIs(t, drv.Ping(ctx, client), firestore.ErrHealthcheckFailed)
	})

	assert.Equal(t, int32(3), fake.reads.Load())
}

func TestNewPool_ReplacesClientAfterFailedHealthCheck(t *testing.T) {
	fake := startFakeFirestore(t)
	fake.respond(codes.NotFound)

	cfg := loadSettings(t, nil)
	p, err := firestore.NewPool(cfg, firestore.Config{
		RetryAttempts:      1,
		ConnectTimeout:     5 * time.Second,
		HealthCheckTimeout: 5 * time.Second,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	first, err := p.Get(ctx)
	require.NoError(t, err)
	require.NoError(t, p.Healthcheck()(ctx))

	fake.respond(codes.Unavailable)
	_, err = p.Get(ctx)
	require.ErrorIs(t, err, firestore.ErrHealthcheckFailed)
	assert.ErrorIs(t, p.Healthcheck()(ctx), firestore.ErrHealthcheckFailed)

	fake.respond(codes.NotFound)
	second, err := p.Get(ctx)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}
