package buffer

import (
	"github.com/huynhanx03/boundedq/pkg/utils"
)

// Ring is a bounded circular FIFO of values.
// It is NOT thread-safe.
//
// The backing array is a power of two so positions wrap with a mask. It starts
// small and doubles on demand, never past the power of two covering bound, so
// a large bound does not reserve memory until it is actually used.
type Ring[T any] struct {
	buf   []T
	mask  int
	head  int // index of the front element
	size  int // number of buffered elements
	bound int // maximum number of buffered elements
}

// NewRing creates an empty Ring that holds at most bound values.
// A bound below one is treated as one.
func NewRing[T any](bound int) *Ring[T] {
	if bound < 1 {
		bound = 1
	}
	slots := utils.CeilToPowerOfTwo(min(bound, defaultRingSlots))
	return &Ring[T]{
		buf:   make([]T, slots),
		mask:  slots - 1,
		bound: bound,
	}
}

func (r *Ring[T]) idx(i int) int { return (r.head + i) & r.mask }

// PushBack appends v after the newest element.
// Returns false, leaving the ring untouched, if the ring is at its bound.
func (r *Ring[T]) PushBack(v T) bool {
	if r.size == r.bound {
		return false
	}
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[r.idx(r.size)] = v
	r.size++
	return true
}

// PopFront removes and returns the oldest element.
// Returns (zero, false) if the ring is empty.
func (r *Ring[T]) PopFront() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero // release the reference
	r.head = (r.head + 1) & r.mask
	r.size--
	return v, true
}

// Front returns the oldest element without removing it.
func (r *Ring[T]) Front() (T, bool) {
	if r.size == 0 {
		var zero T
		return zero, false
	}
	return r.buf[r.head], true
}

// Find returns the first element, scanning oldest to newest, for which pred
// reports true.
func (r *Ring[T]) Find(pred func(T) bool) (T, bool) {
	for i := 0; i < r.size; i++ {
		if v := r.buf[r.idx(i)]; pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// AppendTo appends the buffered elements to dst, oldest first, and returns
// the extended slice.
func (r *Ring[T]) AppendTo(dst []T) []T {
	if r.size == 0 {
		return dst
	}
	end := r.head + r.size
	if end <= len(r.buf) {
		return append(dst, r.buf[r.head:end]...)
	}
	dst = append(dst, r.buf[r.head:]...)
	return append(dst, r.buf[:end-len(r.buf)]...)
}

// Reset drops all buffered elements. Allocated slots are kept.
func (r *Ring[T]) Reset() {
	clear(r.buf)
	r.head = 0
	r.size = 0
}

// Len returns the number of buffered elements.
func (r *Ring[T]) Len() int { return r.size }

// Bound returns the maximum number of elements the ring accepts.
func (r *Ring[T]) Bound() int { return r.bound }

// Slots returns the number of allocated slots.
func (r *Ring[T]) Slots() int { return len(r.buf) }

// IsEmpty returns true if nothing is buffered.
func (r *Ring[T]) IsEmpty() bool { return r.size == 0 }

// IsFull returns true if the ring is at its bound.
func (r *Ring[T]) IsFull() bool { return r.size == r.bound }

// grow doubles the backing array and unwraps the contents to start at zero.
// Called only when size == len(buf) < bound, so the new length never exceeds
// CeilToPowerOfTwo(bound).
func (r *Ring[T]) grow() {
	newBuf := make([]T, len(r.buf)*2)
	n := copy(newBuf, r.buf[r.head:])
	copy(newBuf[n:], r.buf[:r.head])

	r.buf = newBuf
	r.mask = len(newBuf) - 1
	r.head = 0
}
