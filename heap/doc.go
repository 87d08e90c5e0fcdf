// Package heap implements a generic priority queue over an implicit binary
// heap: a contiguous slice laid out as a complete binary tree, with parent
// and child related by index arithmetic instead of pointers.
//
// Ordering is injected at construction as a three-way compare function, so
// the same type serves as a max-heap, a min-heap or anything in between:
//
//	// max-heap over ints
//	h, err := heap.New[int](0, func(a, b int) int { return a - b }, nil)
//	if err != nil {
//		// compare function was nil
//	}
//
//	h.Push(5)
//	h.Push(9)
//	h.Push(2)
//
//	v, ok := h.Pop() // 9, true
//
// The heap holds values it does not own. An optional release function,
// also bound at construction, is invoked on every surviving value when the
// heap is destroyed:
//
//	h, _ := heap.New[*os.File](0,
//		func(a, b *os.File) int { ... },
//		func(f *os.File) { f.Close() },
//	)
//
// When a value's priority changes after insertion, Update repositions it.
// The value is found by identity (==) with a linear scan, which keeps the
// contract simple at the cost of O(n):
//
//	task.priority = 10
//	if err := h.Update(task); err != nil {
//		// not in the heap
//	}
//
// A Heap is single-threaded by design. Calling back into the same heap from
// inside the compare or release function is unsupported. For concurrent use,
// serialize access externally.
package heap
