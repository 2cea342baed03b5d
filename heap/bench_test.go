package heap_test

import (
	"math/rand"
	"testing"

	"github.com/adtkit/adtkit/heap"
)

// BenchmarkHeap_PushPop measures a full push/pop cycle over N elements.
func BenchmarkHeap_PushPop(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(1))
	values := make([]int, N)
	for i := range values {
		values[i] = rng.Int()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := heap.NewOrdered[int]()
		for _, v := range values {
			h.Push(v)
		}
		for !h.IsEmpty() {
			_, _ = h.Pop()
		}
	}
}

// BenchmarkHeapify measures the O(n) bottom-up build against repeated Push.
func BenchmarkHeapify(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(1))
	values := make([]int, N)
	for i := range values {
		values[i] = rng.Int()
	}
	less := func(a, b int) bool { return a < b }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := make([]int, N)
		copy(buf, values)
		_, _ = heap.Heapify(buf, less)
	}
}
