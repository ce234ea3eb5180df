package queue

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/boundedq/pkg/datastructs/buffer"
)

var _ Queue[int] = (*Bounded[int])(nil)

// Bounded is a fixed-capacity FIFO queue safe for concurrent use.
//
// Push never blocks: it fails with ErrFull when the queue is at capacity.
// Pop blocks while the queue is empty and returns false once the queue is
// closed. Get reads without removing and keeps working after Close.
//
// Every field below is guarded by mu; there is no lock-free fast path.
type Bounded[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond // broadcast on Push and Close
	items    *buffer.Ring[T]
	closed   bool

	logger *zap.Logger
}

// New creates an empty, open queue holding at most capacity items.
// Returns ErrInvalidCapacity if capacity is not in [1, MaxCapacity].
func New[T any](capacity int, opts ...Option) (*Bounded[T], error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}

	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	q := &Bounded[T]{
		items:  buffer.NewRing[T](capacity),
		logger: o.logger,
	}
	q.notEmpty = sync.NewCond(&q.mu)

	q.logger.Debug("bounded queue created", zap.Int("capacity", capacity))
	return q, nil
}

// Push appends item to the back of the queue and wakes all blocked Pop calls.
// Returns ErrClosed if the queue is closed, otherwise ErrFull if it is at
// capacity. A rejected item is not stored.
func (q *Bounded[T]) Push(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	if !q.items.PushBack(item) {
		return ErrFull
	}

	q.notEmpty.Broadcast()
	return nil
}

// Offer is Push reporting only whether item was accepted.
func (q *Bounded[T]) Offer(item T) bool {
	return q.Push(item) == nil
}

// Pop removes and returns the front item, blocking while the queue is empty.
// Returns (zero, false) if the queue is closed, including when Close is
// called while Pop is blocked. A false result means no more data will come.
func (q *Bounded[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for !q.closed && q.items.IsEmpty() {
		q.notEmpty.Wait()
	}
	if q.closed {
		var zero T
		return zero, false
	}
	return q.items.PopFront()
}

// PopContext is Pop with cancellation. It returns ErrClosed if the queue is
// closed, or ctx.Err() if ctx is done before an item becomes available.
func (q *Bounded[T]) PopContext(ctx context.Context) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	// Wake waiters on cancellation. Taking mu orders the broadcast after the
	// ctx.Err() check below, so the wakeup cannot be lost.
	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		q.notEmpty.Broadcast()
		q.mu.Unlock()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for !q.closed && q.items.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		q.notEmpty.Wait()
	}
	if q.closed {
		return zero, ErrClosed
	}
	v, _ := q.items.PopFront()
	return v, nil
}

// TryPop removes and returns the front item without blocking.
// Returns (zero, false) if the queue is empty or closed.
func (q *Bounded[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		var zero T
		return zero, false
	}
	return q.items.PopFront()
}

// Get returns a copy of the first item, front to back, for which pred reports
// true. The item stays in the queue. Get never blocks and works after Close.
//
// pred runs while the queue is locked and must not call back into q.
func (q *Bounded[T]) Get(pred func(T) bool) (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.Find(pred)
}

// Snapshot returns the buffered items, front to back.
func (q *Bounded[T]) Snapshot() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.AppendTo(make([]T, 0, q.items.Len()))
}

// Close disables Push and Pop for good and wakes every blocked Pop.
// Buffered items remain visible to Get and Snapshot.
// Calling Close more than once has no further effect.
func (q *Bounded[T]) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	buffered := q.items.Len()
	q.notEmpty.Broadcast()
	q.mu.Unlock()

	q.logger.Debug("bounded queue closed", zap.Int("buffered", buffered))
}

// IsClosed reports whether Close has been called.
func (q *Bounded[T]) IsClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Len returns the number of buffered items.
func (q *Bounded[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

// Capacity returns the maximum number of buffered items.
func (q *Bounded[T]) Capacity() int { return q.items.Bound() }

// IsEmpty returns true if no items are buffered.
func (q *Bounded[T]) IsEmpty() bool { return q.Len() == 0 }

// IsFull returns true if the queue is at capacity.
func (q *Bounded[T]) IsFull() bool { return q.Len() >= q.Capacity() }
