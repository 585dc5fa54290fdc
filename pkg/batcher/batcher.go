// Package batcher accumulates items and flushes them in rate-limited batches,
// either when the buffer fills or on a fixed interval.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher buffers items of one stream and hands full batches to the flush
// callback from a single background goroutine.
type Batcher[T any] struct {
	flush         func(context.Context, []T) error
	flushSize     int
	flushInterval time.Duration
	limiter       ratelimit.Limiter
	logger        *zap.Logger

	queue chan T
	stop  chan struct{}
	done  sync.WaitGroup
}

// New constructs a Batcher. The flush callback receives a buffer that is
// reused between calls and must not be retained.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	return &Batcher[T]{
		flush:         flush,
		flushSize:     flushSize,
		flushInterval: flushInterval,
		limiter:       ratelimit.New(rps),
		logger:        logger,
		queue:         make(chan T, flushSize*2),
		stop:          make(chan struct{}),
	}
}

// Start launches the background flush loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.done.Add(1)
	go func() {
		defer b.done.Done()
		b.run(ctx)
	}()
}

// Stop terminates the flush loop after draining queued items. Add must not
// be called after Stop.
func (b *Batcher[T]) Stop() {
	close(b.stop)
	b.done.Wait()
}

// Add enqueues an item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case b.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)
	emit := func() {
		if len(buf) == 0 {
			return
		}
		b.limiter.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Error(err), zap.Int("size", len(buf)))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	for {
		select {
		case item := <-b.queue:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				emit()
			}

		case <-ticker.C:
			emit()

		case <-b.stop:
			// Drain what Add already enqueued before the final flush.
			for {
				select {
				case item := <-b.queue:
					buf = append(buf, item)
					if len(buf) >= b.flushSize {
						emit()
					}
					continue
				default:
				}
				break
			}
			emit()
			return

		case <-ctx.Done():
			emit()
			return
		}
	}
}
