// Package dispatch provides a bounded FIFO work queue drained by exactly one
// dispatcher goroutine.
package dispatch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Handler processes one item. Errors are logged; the item is not requeued.
type Handler[T any] func(ctx context.Context, item T) error

// Queue is a bounded channel owned by a single dispatcher. Items are handled
// in the order they were offered.
type Queue[T any] struct {
	items   chan T
	handle  Handler[T]
	pending atomic.Int64
	dropped atomic.Int64
	drain   Handler[T]
	logger  *slog.Logger
}

// Option customizes a Queue.
type Option[T any] func(*Queue[T])

// WithDrain sets the handler that receives every item still queued when
// Run stops. It is called with a context that is no longer cancelled.
func WithDrain[T any](drain Handler[T]) Option[T] {
	return func(q *Queue[T]) { q.drain = drain }
}

// New creates a queue holding at most capacity items.
func New[T any](capacity int, handle Handler[T], logger *slog.Logger, opts ...Option[T]) *Queue[T] {
	if capacity <= 0 {
		capacity = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue[T]{
		items:  make(chan T, capacity),
		handle: handle,
		logger: logger,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Offer enqueues item without blocking. It returns false when the queue is
// full.
func (q *Queue[T]) Offer(item T) bool {
	q.pending.Add(1)
	select {
	case q.items <- item:
		return true
	default:
		q.pending.Add(-1)
		q.dropped.Add(1)
		return false
	}
}

// Pending returns the number of items offered but not yet handled.
func (q *Queue[T]) Pending() int64 {
	return q.pending.Load()
}

// Dropped returns how many offers were rejected because the queue was full.
func (q *Queue[T]) Dropped() int64 {
	return q.dropped.Load()
}

// Run dispatches items until ctx is cancelled, then hands whatever is still
// queued to the drain handler. It must be called from one goroutine only.
func (q *Queue[T]) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			q.drainAll(context.WithoutCancel(ctx))
			return nil
		}
		select {
		case <-ctx.Done():
			q.drainAll(context.WithoutCancel(ctx))
			return nil
		case item := <-q.items:
			if err := q.handle(ctx, item); err != nil {
				q.logger.Error("dispatch failed", slog.Any("error", err))
			}
			q.pending.Add(-1)
		}
	}
}

func (q *Queue[T]) drainAll(ctx context.Context) {
	var n int64
	for {
		select {
		case item := <-q.items:
			n++
			if q.drain != nil {
				if err := q.drain(ctx, item); err != nil {
					q.logger.Error("drain failed", slog.Any("error", err))
				}
			}
			q.pending.Add(-1)
		default:
			if n > 0 {
				q.logger.Warn("dispatcher stopped, drained pending items",
					slog.Int64("drained", n), slog.Bool("handled", q.drain != nil))
			}
			return
		}
	}
}
