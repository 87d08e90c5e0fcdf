// Package stack implements a generic LIFO stack over a dynamically grown
// slice. Push and Pop are amortized O(1); the backing storage doubles when
// full and never shrinks. An optional release function, bound at
// construction, is invoked on every surviving value at Destroy.
//
// A Stack is not safe for concurrent use.
package stack

import "errors"

// defaultCapacity is applied when the caller provides a non-positive hint.
const defaultCapacity = 8

var (
	// ErrNilStack is returned by mutating operations on a nil receiver.
	ErrNilStack = errors.New("stack: nil stack")
	// ErrDestroyed is returned by any operation after Destroy.
	ErrDestroyed = errors.New("stack: stack has been destroyed")
)

// ReleaseFunc releases any resources owned by a value. When supplied at
// construction it is invoked once per surviving value during Destroy.
type ReleaseFunc[T any] func(v T)

// Stack is a LIFO stack. The top of the stack is the last pushed value.
type Stack[T any] struct {
	data      []T
	top       int // index of the next free slot, doubles as the size
	release   ReleaseFunc[T]
	destroyed bool
}

// New creates a Stack with the given capacity hint. A non-positive capacity
// falls back to 8. release may be nil for caller-managed values.
func New[T any](capacity int, release ReleaseFunc[T]) *Stack[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Stack[T]{
		data:    make([]T, capacity),
		release: release,
	}
}

// Push places a value on top of the stack, doubling the backing slice when
// full.
func (s *Stack[T]) Push(v T) error {
	if s == nil {
		return ErrNilStack
	}
	if s.destroyed {
		return ErrDestroyed
	}
	if s.top == len(s.data) {
		next := make([]T, len(s.data)*2)
		copy(next, s.data)
		s.data = next
	}
	s.data[s.top] = v
	s.top++
	return nil
}

// Pop removes and returns the value on top of the stack. The second return
// is false when the stack is nil, empty or destroyed.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s == nil || s.destroyed || s.top == 0 {
		return zero, false
	}
	s.top--
	v := s.data[s.top]
	s.data[s.top] = zero // drop the reference held by the vacated slot
	return v, true
}

// Peek returns the value on top of the stack without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if s == nil || s.destroyed || s.top == 0 {
		return zero, false
	}
	return s.data[s.top-1], true
}

// Len returns the number of values on the stack, or -1 when the stack is nil
// or destroyed.
func (s *Stack[T]) Len() int {
	if s == nil || s.destroyed {
		return -1
	}
	return s.top
}

// Destroy invokes the release function, when one was supplied, on every
// surviving value in ascending index order and drops the backing storage. No
// operation is valid afterwards.
func (s *Stack[T]) Destroy() error {
	if s == nil {
		return ErrNilStack
	}
	if s.destroyed {
		return ErrDestroyed
	}
	if s.release != nil {
		for i := 0; i < s.top; i++ {
			s.release(s.data[i])
		}
	}
	s.data = nil
	s.top = 0
	s.destroyed = true
	return nil
}
