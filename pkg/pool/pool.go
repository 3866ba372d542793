package pool

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/acdih/synaptic/pkg/logger"
)

// Driver creates, checks and releases clients of type C.
type Driver[C any] interface {
	Dial(ctx context.Context) (C, error)
	Ping(ctx context.Context, client C) error
	Close(client C) error
}

// Pool owns at most one live client and hands it out to every caller.
//
// The client is created on the first Get. Later calls return it as long as
// it is healthy; a failed health check, or an explicit Invalidate, closes it
// and the next Get dials a replacement. Dialing is bounded by the retry
// policy and never returns a client that failed its initial Ping.
type Pool[C any] struct {
	drv   Driver[C]
	cfg   Config
	log   *slog.Logger
	now   func() time.Time
	group singleflight.Group

	mu        sync.Mutex
	client    C
	handleID  string
	live      bool
	checkedAt time.Time
	closed    bool
}

// New returns a pool around drv. No connection is made until Get.
func New[C any](drv Driver[C], opts ...Option) *Pool[C] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = logger.Noop()
	}
	if o.cfg.RetryAttempts < 1 {
		o.cfg.RetryAttempts = 1
	}

	return &Pool[C]{
		drv: drv,
		cfg: o.cfg,
		log: o.log.With(logger.Component(o.name)),
		now: o.now,
	}
}

// Get returns the pooled client, creating or replacing it when needed.
func (p *Pool[C]) Get(ctx context.Context) (C, error) {
	var zero C
	if p.drv == nil {
		return zero, ErrNilDriver
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return zero, ErrPoolClosed
	}
	if p.live && p.fresh() {
		c := p.client
		p.mu.Unlock()
		return c, nil
	}
	live, c, id := p.live, p.client, p.handleID
	p.mu.Unlock()

	if live {
		err := p.ping(ctx, c)
		if err == nil {
			p.mu.Lock()
			if p.closed {
				p.mu.Unlock()
				return zero, ErrPoolClosed
			}
			if p.handleID == id && p.live {
				p.checkedAt = p.now()
			}
			p.mu.Unlock()
			return c, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			// The caller gave up; that says nothing about the client.
			return zero, ctxErr
		}
		p.log.WarnContext(ctx, "client failed health check, reconnecting",
			logger.HandleID(id), logger.Error(err))
		p.discard(id)
	}

	return p.reconnect(ctx)
}

// Invalidate closes the current client so the next Get dials a new one.
// Callers use it when an operation reveals a broken connection.
func (p *Pool[C]) Invalidate() {
	p.mu.Lock()
	id := p.handleID
	p.mu.Unlock()
	p.discard(id)
}

// Close releases the client. Get returns ErrPoolClosed afterwards.
// It is safe for repeated calls.
func (p *Pool[C]) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	live, c, id := p.live, p.client, p.handleID
	p.reset()
	p.mu.Unlock()

	if !live {
		return nil
	}
	p.log.Info("closing client", logger.HandleID(id))
	return p.drv.Close(c)
}

// Healthcheck returns a function suitable for readiness probes. It performs
// a Get, so a broken client is replaced as part of the check.
func (p *Pool[C]) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		if _, err := p.Get(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// fresh must be called with p.mu held.
func (p *Pool[C]) fresh() bool {
	return p.cfg.HealthCheckInterval > 0 && p.now().Sub(p.checkedAt) < p.cfg.HealthCheckInterval
}

// reset must be called with p.mu held.
func (p *Pool[C]) reset() {
	var zero C
	p.client = zero
	p.handleID = ""
	p.live = false
	p.checkedAt = time.Time{}
}

// discard drops the client identified by id unless it was already replaced.
func (p *Pool[C]) discard(id string) {
	p.mu.Lock()
	if !p.live || p.handleID != id {
		p.mu.Unlock()
		return
	}
	c := p.client
	p.reset()
	p.mu.Unlock()

	if err := p.drv.Close(c); err != nil {
		p.log.Warn("failed to close stale client", logger.HandleID(id), logger.Error(err))
	}
}

func (p *Pool[C]) ping(ctx context.Context, c C) error {
	if p.cfg.HealthCheckTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.HealthCheckTimeout)
		defer cancel()
	}
	return p.drv.Ping(ctx, c)
}

// reconnect dials a new client. Concurrent callers share a single dial,
// which is detached from every caller's cancellation and bounded by
// ConnectTimeout instead; each caller only waits as long as its own ctx.
func (p *Pool[C]) reconnect(ctx context.Context) (C, error) {
	var zero C
	ch := p.group.DoChan("dial", func() (any, error) {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return nil, ErrPoolClosed
		}
		// Another caller may have finished a dial just before this one started.
		if p.live {
			c := p.client
			p.mu.Unlock()
			return c, nil
		}
		p.mu.Unlock()

		dialCtx := context.WithoutCancel(ctx)
		if p.cfg.ConnectTimeout > 0 {
			var cancel context.CancelFunc
			dialCtx, cancel = context.WithTimeout(dialCtx, p.cfg.ConnectTimeout)
			defer cancel()
		}
		return p.dial(dialCtx)
	})

	select {
	case <-ctx.Done():
		return zero, errors.Join(ErrConnectFailed, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(C), nil
	}
}

func (p *Pool[C]) dial(ctx context.Context) (C, error) {
	var zero C
	var lastErr error

	for attempt := 1; attempt <= p.cfg.RetryAttempts; attempt++ {
		start := p.now()
		c, err := p.drv.Dial(ctx)
		if err == nil {
			if err = p.ping(ctx, c); err != nil {
				_ = p.drv.Close(c)
			}
		}

		if err == nil {
			id := uuid.NewString()

			p.mu.Lock()
			if p.closed {
				p.mu.Unlock()
				_ = p.drv.Close(c)
				return zero, ErrPoolClosed
			}
			p.client = c
			p.handleID = id
			p.live = true
			p.checkedAt = p.now()
			p.mu.Unlock()

			p.log.InfoContext(ctx, "client connected",
				logger.HandleID(id),
				logger.Attempt(attempt),
				logger.Duration(p.now().Sub(start)),
			)
			return c, nil
		}

		lastErr = err
		p.log.WarnContext(ctx, "client connection attempt failed",
			logger.Attempt(attempt),
			logger.RetryCount(p.cfg.RetryAttempts),
			logger.Error(err),
		)

		if attempt == p.cfg.RetryAttempts {
			break
		}

		// Linear backoff: attempt n waits n*RetryInterval.
		wait := time.Duration(attempt) * p.cfg.RetryInterval
		if wait <= 0 {
			if ctx.Err() != nil {
				return zero, errors.Join(ErrConnectFailed, ctx.Err())
			}
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, errors.Join(ErrConnectFailed, lastErr, ctx.Err())
		case <-timer.C:
		}
	}

	return zero, errors.Join(ErrConnectFailed, lastErr)
}
