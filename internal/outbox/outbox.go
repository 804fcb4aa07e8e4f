// Package outbox relays queued row events to the notification dispatcher.
package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pcc1news/pcc1-manager/internal/dependency"
)

// Config holds configuration for the outbox relay.
type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	BatchSize      int           `mapstructure:"batch_size"`
	MaxAttempts    int           `mapstructure:"max_attempts"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff"`
	MaxBackoff     time.Duration `mapstructure:"max_backoff"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 5 * time.Second,
		BatchSize:      50,
		MaxAttempts:    8,
		InitialBackoff: 30 * time.Second,
		MaxBackoff:     time.Hour,
	}
}

// Worker delivers outbox events at least once. Only one worker may run per
// deployment.
type Worker struct {
	outbox     dependency.Outbox
	dispatcher dependency.Dispatcher
	c          *Config
	now        func() time.Time
	ctx        context.Context
	stop       context.CancelFunc
}

// New creates a new outbox worker.
func New(c *Config, outbox dependency.Outbox, dispatcher dependency.Dispatcher) *Worker {
	dc := DefaultConfig()
	if c == nil {
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = dc.WorkerInterval
	}
	if c.BatchSize == 0 {
		c.BatchSize = dc.BatchSize
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = dc.MaxAttempts
	}
	if c.InitialBackoff == 0 {
		c.InitialBackoff = dc.InitialBackoff
	}
	if c.MaxBackoff == 0 {
		c.MaxBackoff = dc.MaxBackoff
	}
	return &Worker{
		outbox:     outbox,
		dispatcher: dispatcher,
		c:          c,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("outbox worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("outbox worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}

// retryDelay returns the wait before the next attempt of an event that has
// already failed attempts times.
func (w *Worker) retryDelay(attempts int) time.Duration {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = w.c.InitialBackoff
	b.MaxInterval = w.c.MaxBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()

	d := b.NextBackOff()
	for i := 1; i < attempts; i++ {
		d = b.NextBackOff()
	}
	return d
}
