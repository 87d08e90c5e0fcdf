// Package queue implements a generic FIFO queue over a circular buffer.
// Head and tail indices advance with modular arithmetic, so enqueue, dequeue
// and peek all run in O(1) without ever shifting elements. The element count
// is tracked in its own field, which removes the classic head==tail
// full-or-empty ambiguity.
//
// The bounded variant (New) rejects enqueues at capacity; the growable
// variant (NewGrowable) doubles the buffer instead. Either way an optional
// release function, bound at construction, is invoked on every surviving
// value at Destroy.
//
// A Queue is not safe for concurrent use.
package queue

import "errors"

// defaultCapacity is applied when the caller provides a non-positive hint.
const defaultCapacity = 8

var (
	// ErrNilQueue is returned by mutating operations on a nil receiver.
	ErrNilQueue = errors.New("queue: nil queue")
	// ErrDestroyed is returned by any operation after Destroy.
	ErrDestroyed = errors.New("queue: queue has been destroyed")
	// ErrFull is returned by Enqueue on a bounded queue at capacity. The
	// queue is left untouched.
	ErrFull = errors.New("queue: queue is full")
)

// ReleaseFunc releases any resources owned by a value. When supplied at
// construction it is invoked once per surviving value during Destroy.
type ReleaseFunc[T any] func(v T)

// Queue is a FIFO queue over a ring buffer.
type Queue[T any] struct {
	data      []T
	head      int // next index to dequeue
	tail      int // next index to enqueue
	size      int
	growable  bool
	release   ReleaseFunc[T]
	destroyed bool
}

// New creates a bounded Queue with the given capacity. A non-positive
// capacity falls back to 8. Enqueue fails with ErrFull once the buffer is
// full. release may be nil for caller-managed values.
func New[T any](capacity int, release ReleaseFunc[T]) *Queue[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Queue[T]{
		data:    make([]T, capacity),
		release: release,
	}
}

// NewGrowable creates a Queue that doubles its buffer instead of rejecting
// enqueues when full.
func NewGrowable[T any](capacity int, release ReleaseFunc[T]) *Queue[T] {
	q := New[T](capacity, release)
	q.growable = true
	return q
}

// Enqueue places a value at the tail of the queue.
func (q *Queue[T]) Enqueue(v T) error {
	if q == nil {
		return ErrNilQueue
	}
	if q.destroyed {
		return ErrDestroyed
	}
	if q.size == len(q.data) {
		if !q.growable {
			return ErrFull
		}
		q.grow()
	}
	q.data[q.tail] = v
	q.tail = (q.tail + 1) % len(q.data)
	q.size++
	return nil
}

// Dequeue removes and returns the value at the head of the queue. The second
// return is false when the queue is nil, empty or destroyed.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q == nil || q.destroyed || q.size == 0 {
		return zero, false
	}
	v := q.data[q.head]
	q.data[q.head] = zero // drop the reference held by the vacated slot
	q.head = (q.head + 1) % len(q.data)
	q.size--
	return v, true
}

// Peek returns the value at the head of the queue without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if q == nil || q.destroyed || q.size == 0 {
		return zero, false
	}
	return q.data[q.head], true
}

// Len returns the number of values in the queue, or -1 when the queue is nil
// or destroyed.
func (q *Queue[T]) Len() int {
	if q == nil || q.destroyed {
		return -1
	}
	return q.size
}

// Destroy drains the queue through Dequeue, invoking the release function on
// each value when one was supplied, then drops the backing storage. Draining
// through the public path keeps destruction independent of the ring layout.
// No operation is valid afterwards.
func (q *Queue[T]) Destroy() error {
	if q == nil {
		return ErrNilQueue
	}
	if q.destroyed {
		return ErrDestroyed
	}
	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		if q.release != nil {
			q.release(v)
		}
	}
	q.data = nil
	q.head = 0
	q.tail = 0
	q.destroyed = true
	return nil
}

// grow doubles the buffer, unwrapping the ring into the front of the new
// slice so head restarts at 0.
func (q *Queue[T]) grow() {
	next := make([]T, len(q.data)*2)
	for i := 0; i < q.size; i++ {
		next[i] = q.data[(q.head+i)%len(q.data)]
	}
	q.data = next
	q.head = 0
	q.tail = q.size
}
