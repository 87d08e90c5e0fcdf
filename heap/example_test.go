package heap_test

import (
	"fmt"

	"github.com/alexsniffin/gods/heap"
)

// ExampleHeap demonstrates a max-heap over plain integers.
func ExampleHeap() {
	h, _ := heap.New[int](0, func(a, b int) int { return a - b }, nil)

	for _, k := range []int{5, 2, 9, 1} {
		h.Push(k)
	}

	for {
		v, ok := h.Pop()
		if !ok {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 9
	// 5
	// 2
	// 1
}

// ExampleHeap_Update demonstrates repositioning a value whose priority
// changed after insertion.
func ExampleHeap_Update() {
	type job struct {
		name     string
		priority int
	}

	h, _ := heap.New[*job](0, func(a, b *job) int { return a.priority - b.priority }, nil)

	urgent := &job{name: "backup", priority: 2}
	h.Push(&job{name: "reindex", priority: 5})
	h.Push(urgent)
	h.Push(&job{name: "compact", priority: 3})

	// the backup became urgent; tell the heap its rank changed
	urgent.priority = 10
	if err := h.Update(urgent); err != nil {
		panic(err)
	}

	v, _ := h.Pop()
	fmt.Println(v.name)

	// Output:
	// backup
}
