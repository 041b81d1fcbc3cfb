// Package audit records session lifecycle transitions. Recording is fire-and-forget: a failed or
// slow writer never blocks or fails the session operation that produced the event. When writers
// fall behind, events beyond the queue capacity are dropped and logged.
package audit

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/advancia-platform/credential-lifecycle/internal/audit/domain"
)

// DefaultWriteTimeout bounds each writer call made by the Dispatcher.
const DefaultWriteTimeout = 5 * time.Second

const (
	// DefaultQueueSize is the number of events buffered ahead of the writers.
	DefaultQueueSize = 1024
	// DefaultWorkers is the number of goroutines draining the queue.
	DefaultWorkers = 4
)

// Sink receives audit events. Record must not block on I/O.
type Sink interface {
	Record(ctx context.Context, e domain.Event)
}

// Writer persists or forwards one event. Errors are logged by the Dispatcher and otherwise ignored.
type Writer interface {
	Write(ctx context.Context, e *domain.Event) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, e *domain.Event) error

func (f WriterFunc) Write(ctx context.Context, e *domain.Event) error { return f(ctx, e) }

// IPExtractor returns the client IP from the request context (e.g. gRPC metadata or peer).
type IPExtractor func(context.Context) string

// Discard is a Sink that drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Record(context.Context, domain.Event) {}

// Dispatcher is a Sink that queues each event and fans it out to its writers from a fixed pool of
// workers. Record never blocks: when the queue is full the event is dropped and counted. The
// write context keeps the request's values but not its cancellation, and is bounded by the write
// timeout. Close drains the queue.
type Dispatcher struct {
	writers     []Writer
	ipExtractor IPExtractor
	timeout     time.Duration
	queueSize   int
	workers     int
	logger      *slog.Logger

	queue   chan queued
	dropped atomic.Uint64

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

type queued struct {
	ctx   context.Context
	event domain.Event
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithWriteTimeout overrides DefaultWriteTimeout.
func WithWriteTimeout(d time.Duration) DispatcherOption {
	return func(x *Dispatcher) {
		if d > 0 {
			x.timeout = d
		}
	}
}

// WithQueueSize overrides DefaultQueueSize.
func WithQueueSize(n int) DispatcherOption {
	return func(x *Dispatcher) {
		if n > 0 {
			x.queueSize = n
		}
	}
}

// WithWorkers overrides DefaultWorkers.
func WithWorkers(n int) DispatcherOption {
	return func(x *Dispatcher) {
		if n > 0 {
			x.workers = n
		}
	}
}

// WithIPExtractor fills ActorIP from the context when the event does not carry one.
func WithIPExtractor(f IPExtractor) DispatcherOption {
	return func(x *Dispatcher) { x.ipExtractor = f }
}

// NewDispatcher returns a Dispatcher over writers and starts its workers. Nil writers are skipped.
func NewDispatcher(logger *slog.Logger, writers []Writer, opts ...DispatcherOption) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		timeout:   DefaultWriteTimeout,
		queueSize: DefaultQueueSize,
		workers:   DefaultWorkers,
		logger:    logger,
	}
	for _, w := range writers {
		if w != nil {
			d.writers = append(d.writers, w)
		}
	}
	for _, opt := range opts {
		opt(d)
	}
	if len(d.writers) == 0 {
		return d
	}
	d.queue = make(chan queued, d.queueSize)
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run()
	}
	return d
}

// Record stamps the event with an id and timestamp when missing and enqueues it.
// Events recorded after Close, or while the queue is full, are dropped.
func (d *Dispatcher) Record(ctx context.Context, e domain.Event) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	if e.ActorIP == "" && d.ipExtractor != nil {
		e.ActorIP = d.ipExtractor(ctx)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed || d.queue == nil {
		return
	}
	select {
	case d.queue <- queued{ctx: context.WithoutCancel(ctx), event: e}:
	default:
		n := d.dropped.Add(1)
		d.logger.WarnContext(ctx, "audit: queue full, event dropped",
			slog.String("action", string(e.Action)),
			slog.String("session_id", e.SessionID),
			slog.Uint64("dropped_total", n))
	}
}

// Dropped returns the number of events discarded because the queue was full.
func (d *Dispatcher) Dropped() uint64 { return d.dropped.Load() }

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for q := range d.queue {
		d.write(q.ctx, &q.event)
	}
}

func (d *Dispatcher) write(ctx context.Context, e *domain.Event) {
	wctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	for _, w := range d.writers {
		if err := w.Write(wctx, e); err != nil {
			d.logger.WarnContext(wctx, "audit: write failed",
				slog.String("action", string(e.Action)),
				slog.String("session_id", e.SessionID),
				slog.Any("error", err))
		}
	}
}

// Close stops accepting events and waits for queued writes to finish or ctx, whichever is first.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		if d.queue != nil {
			close(d.queue)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Join(errors.New("audit: drain incomplete"), ctx.Err())
	}
}
