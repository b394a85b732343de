package mail

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrDispatcherClosed is returned by Shutdown when called twice
var ErrDispatcherClosed = errors.New("mail dispatcher already closed")

// DispatcherConfig sizes the worker pool
type DispatcherConfig struct {
	Workers     int
	QueueSize   int
	SendTimeout time.Duration
}

// Dispatcher sends messages on a fixed pool of workers fed by a bounded queue.
// Enqueue never blocks; failed sends are logged and dropped.
type Dispatcher struct {
	sender  Sender
	queue   chan Message
	logger  zerolog.Logger
	timeout time.Duration

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewDispatcher starts the workers
func NewDispatcher(sender Sender, cfg DispatcherConfig, logger zerolog.Logger) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 30 * time.Second
	}

	d := &Dispatcher{
		sender:  sender,
		queue:   make(chan Message, cfg.QueueSize),
		logger:  logger,
		timeout: cfg.SendTimeout,
	}
	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	logger.Info().Int("workers", cfg.Workers).Int("queueSize", cfg.QueueSize).Msg("Mail dispatcher started")
	return d
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.sender.Send(ctx, msg); err != nil {
			d.logger.Error().Err(err).
				Int("worker", id).
				Str("to", msg.To).
				Str("subject", msg.Subject).
				Msg("Failed to send email")
		}
		cancel()
	}
}

// Enqueue hands msg to the workers. It reports false when the message was dropped.
func (d *Dispatcher) Enqueue(msg Message) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn().Str("to", msg.To).Msg("Mail dispatcher closed, email dropped")
		return false
	}

	select {
	case d.queue <- msg:
		return true
	default:
		d.logger.Warn().Str("to", msg.To).Str("subject", msg.Subject).Msg("Mail queue full, email dropped")
		return false
	}
}

// Shutdown stops accepting messages and waits for queued ones to be sent or ctx to end
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrDispatcherClosed
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info().Msg("Mail dispatcher drained")
		return nil
	case <-ctx.Done():
		d.logger.Warn().Int("pending", len(d.queue)).Msg("Mail dispatcher shutdown timed out")
		return ctx.Err()
	}
}
