package heap

import "errors"

// defaultCapacity is applied when the caller provides a non-positive hint.
const defaultCapacity = 16

var (
	// ErrNilCompare is returned by New when no compare function is given. A
	// heap without an ordering is meaningless, so construction is aborted.
	ErrNilCompare = errors.New("heap: compare function is required")
	// ErrNilHeap is returned by mutating operations on a nil receiver.
	ErrNilHeap = errors.New("heap: nil heap")
	// ErrDestroyed is returned by any operation after Destroy.
	ErrDestroyed = errors.New("heap: heap has been destroyed")
	// ErrEmpty is returned by Update when the heap holds no values.
	ErrEmpty = errors.New("heap: heap is empty")
	// ErrNotFound is returned by Update when the value is not in the heap.
	ErrNotFound = errors.New("heap: value not found")
)

// CompareFunc reports the relative priority of two values. A positive result
// means a outranks b, a negative result means b outranks a and zero means the
// two are of equal priority. The heap never inspects values itself; this
// function is the sole decision-maker for ordering.
type CompareFunc[T any] func(a, b T) int

// ReleaseFunc releases any resources owned by a value. When supplied at
// construction it is invoked once per surviving value during Destroy.
type ReleaseFunc[T any] func(v T)

// Heap is a priority queue backed by a contiguous slice holding an implicit
// complete binary tree: the children of index i live at 2i+1 and 2i+2. The
// value at index 0 is the highest ranked under the compare function.
//
// A Heap is not safe for concurrent use.
type Heap[T comparable] struct {
	data      []T
	size      int
	compare   CompareFunc[T]
	release   ReleaseFunc[T]
	destroyed bool
}

// New creates a Heap with the given capacity hint. A non-positive capacity
// falls back to 16. The compare function is mandatory; release may be nil for
// caller-managed values.
func New[T comparable](capacity int, compare CompareFunc[T], release ReleaseFunc[T]) (*Heap[T], error) {
	if compare == nil {
		return nil, ErrNilCompare
	}
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Heap[T]{
		data:    make([]T, capacity),
		compare: compare,
		release: release,
	}, nil
}

// Push adds a value to the heap, growing the backing slice by doubling when
// full. Amortized O(log n).
func (h *Heap[T]) Push(v T) error {
	if h == nil {
		return ErrNilHeap
	}
	if h.destroyed {
		return ErrDestroyed
	}
	if h.size == len(h.data) {
		h.grow()
	}

	// new values start as the last leaf and float up to their rank
	i := h.size
	h.data[i] = v
	h.size++
	h.siftUp(i)
	return nil
}

// Pop removes and returns the highest ranked value. The second return is
// false when the heap is nil, empty or destroyed.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if h == nil || h.destroyed || h.size == 0 {
		return zero, false
	}

	top := h.data[0]
	h.data[0] = h.data[h.size-1]
	h.size--
	h.data[h.size] = zero // release the reference held by the vacated slot
	if h.size > 0 {
		h.siftDown(0)
	}
	return top, true
}

// Peek returns the highest ranked value without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	var zero T
	if h == nil || h.destroyed || h.size == 0 {
		return zero, false
	}
	return h.data[0], true
}

// Len returns the number of values in the heap, or -1 when the heap is nil
// or destroyed.
func (h *Heap[T]) Len() int {
	if h == nil || h.destroyed {
		return -1
	}
	return h.size
}

// Cap returns the current physical capacity, or -1 when the heap is nil or
// destroyed. Capacity only ever grows.
func (h *Heap[T]) Cap() int {
	if h == nil || h.destroyed {
		return -1
	}
	return len(h.data)
}

// Update repositions a value whose priority changed externally. The value is
// located by identity with a linear scan; the caller does not declare whether
// the priority rose or fell, so both repair directions run and at most one
// moves the value. O(n) for the scan, O(log n) for the repair.
func (h *Heap[T]) Update(ref T) error {
	if h == nil {
		return ErrNilHeap
	}
	if h.destroyed {
		return ErrDestroyed
	}
	if h.size == 0 {
		return ErrEmpty
	}

	target := -1
	for i := 0; i < h.size; i++ {
		if h.data[i] == ref {
			target = i
			break
		}
	}
	if target < 0 {
		return ErrNotFound
	}

	h.siftUp(target)
	h.siftDown(target)
	return nil
}

// Destroy invokes the release function, when one was supplied, on every
// surviving value in ascending index order (not priority order) and drops the
// backing storage. No operation is valid afterwards.
func (h *Heap[T]) Destroy() error {
	if h == nil {
		return ErrNilHeap
	}
	if h.destroyed {
		return ErrDestroyed
	}
	if h.release != nil {
		for i := 0; i < h.size; i++ {
			h.release(h.data[i])
		}
	}
	h.data = nil
	h.size = 0
	h.destroyed = true
	return nil
}

// grow doubles the backing slice. The old slice is untouched until the copy
// completes, so a live heap is never observed mid-growth.
func (h *Heap[T]) grow() {
	next := make([]T, len(h.data)*2)
	copy(next, h.data[:h.size])
	h.data = next
}

// siftUp floats the value at index i toward the root while it outranks its
// parent.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.compare(h.data[i], h.data[parent]) <= 0 {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown sinks the value at index i toward the leaves. Both children are
// evaluated so the stronger of the two moves up, which keeps the subtree
// ordered when the value beats one child but not the other.
func (h *Heap[T]) siftDown(i int) {
	for {
		top := i
		left := 2*i + 1
		right := 2*i + 2

		if left < h.size && h.compare(h.data[left], h.data[top]) > 0 {
			top = left
		}
		if right < h.size && h.compare(h.data[right], h.data[top]) > 0 {
			top = right
		}

		if top == i {
			break
		}

		h.swap(i, top)
		i = top
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}
