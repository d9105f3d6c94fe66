// Package polling owns the timer-driven refetch used for notification
// counts and the dashboard watch mode. The loop runs the task once
// immediately, then on every tick, and Stop guarantees no task runs after
// it returns.
package polling

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var ErrRunning = errors.New("polling: poller already started")

type Task func(ctx context.Context) error

type Poller struct {
	interval time.Duration
	task     Task
	logger   zerolog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func New(interval time.Duration, task Task, logger zerolog.Logger) *Poller {
	return &Poller{
		interval: interval,
		task:     task,
		logger:   logger.With().Str("component", "poller").Logger(),
	}
}

func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true

	go p.loop(ctx)
	return nil
}

// Stop cancels the loop and waits for it to exit, so a caller tearing down
// a view knows no stale update can land afterwards. Safe to call twice.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	cancel, done := p.cancel, p.done
	p.running = false
	p.mu.Unlock()

	cancel()
	<-done
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.runTask(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.runTask(ctx)
		}
	}
}

func (p *Poller) runTask(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := p.task(ctx); err != nil && !errors.Is(err, context.Canceled) {
		// Poll failures are transient by assumption; log and keep ticking.
		p.logger.Warn().Err(err).Msg("Poll task failed")
	}
}
