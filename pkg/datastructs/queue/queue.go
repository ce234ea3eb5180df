package queue

// Queue is a generic interface for closeable, bounded FIFO queues.
type Queue[T any] interface {
	// Push adds an item to the back of the queue without blocking.
	// Returns ErrClosed if the queue is closed, ErrFull if it is at capacity.
	Push(item T) error

	// Pop removes and returns the front item, blocking while the queue is
	// empty. Returns (zero, false) once the queue is closed.
	Pop() (T, bool)

	// Get returns the first item, front to back, satisfying pred without
	// removing it. Returns (zero, false) if no item matches.
	Get(pred func(T) bool) (T, bool)

	// Close disables Push and Pop and wakes every blocked Pop.
	Close()

	// Capacity returns the maximum number of buffered items.
	Capacity() int
}
