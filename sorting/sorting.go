package sorting

import (
	"cmp"

	"github.com/adtkit/adtkit/heap"
)

// lessOf returns the natural strict ordering for an ordered type.
func lessOf[T cmp.Ordered]() func(a, b T) bool {
	return func(a, b T) bool { return a < b }
}

// Bubble sorts s ascending by repeated adjacent swaps, stopping early on a
// pass with no swaps. Stable.
func Bubble[T cmp.Ordered](s []T) { BubbleFunc(s, lessOf[T]()) }

// BubbleFunc is Bubble under an explicit less ordering.
func BubbleFunc[T any](s []T, less func(a, b T) bool) {
	for n := len(s); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if less(s[i], s[i-1]) {
				s[i-1], s[i] = s[i], s[i-1]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Insertion sorts s ascending by growing a sorted prefix one element at a
// time. Stable; O(n) on already-sorted input.
func Insertion[T cmp.Ordered](s []T) { InsertionFunc(s, lessOf[T]()) }

// InsertionFunc is Insertion under an explicit less ordering.
func InsertionFunc[T any](s []T, less func(a, b T) bool) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && less(v, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}

// Selection sorts s ascending by repeatedly swapping the minimum of the
// unsorted suffix into place. Not stable.
func Selection[T cmp.Ordered](s []T) { SelectionFunc(s, lessOf[T]()) }

// SelectionFunc is Selection under an explicit less ordering.
func SelectionFunc[T any](s []T, less func(a, b T) bool) {
	for i := 0; i < len(s)-1; i++ {
		min := i
		for j := i + 1; j < len(s); j++ {
			if less(s[j], s[min]) {
				min = j
			}
		}
		if min != i {
			s[i], s[min] = s[min], s[i]
		}
	}
}

// Shell sorts s ascending with gapped insertion passes over the Knuth
// 3h+1 gap sequence. Not stable.
func Shell[T cmp.Ordered](s []T) { ShellFunc(s, lessOf[T]()) }

// ShellFunc is Shell under an explicit less ordering.
func ShellFunc[T any](s []T, less func(a, b T) bool) {
	n := len(s)
	gap := 1
	for gap < n/3 {
		gap = 3*gap + 1 // 1, 4, 13, 40, …
	}
	for ; gap >= 1; gap /= 3 {
		for i := gap; i < n; i++ {
			v := s[i]
			j := i - gap
			for j >= 0 && less(v, s[j]) {
				s[j+gap] = s[j]
				j -= gap
			}
			s[j+gap] = v
		}
	}
}

// Merge sorts s ascending by recursive halving and merging. Stable;
// O(n) auxiliary memory.
func Merge[T cmp.Ordered](s []T) { MergeFunc(s, lessOf[T]()) }

// MergeFunc is Merge under an explicit less ordering.
func MergeFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	buf := make([]T, len(s))
	mergeSort(s, buf, less)
}

func mergeSort[T any](s, buf []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], less)
	mergeSort(s[mid:], buf[mid:], less)

	copy(buf, s)
	i, j := 0, mid
	for k := 0; k < len(s); k++ {
		switch {
		case i >= mid:
			s[k] = buf[j]
			j++
		case j >= len(s):
			s[k] = buf[i]
			i++
		case less(buf[j], buf[i]): // strict: keeps the left run first on ties
			s[k] = buf[j]
			j++
		default:
			s[k] = buf[i]
			i++
		}
	}
}

// Quick sorts s ascending with in-place Hoare partitioning around the
// middle element. Not stable; O(log n) stack on average.
func Quick[T cmp.Ordered](s []T) { QuickFunc(s, lessOf[T]()) }

// QuickFunc is Quick under an explicit less ordering.
func QuickFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	p := hoarePartition(s, less)
	QuickFunc(s[:p+1], less)
	QuickFunc(s[p+1:], less)
}

// hoarePartition splits s around the middle-element pivot and returns the
// last index of the lower half. Every element of s[:p+1] is ≤ every
// element of s[p+1:].
//
// The pivot is the lower middle: it sits at index ≤ len(s)-2, so the
// forward scan stops before the last element and the returned index is
// at most len(s)-2. Both recursion halves always shrink.
func hoarePartition[T any](s []T, less func(a, b T) bool) int {
	pivot := s[(len(s)-1)/2]
	i, j := -1, len(s)
	for {
		for {
			i++
			if !less(s[i], pivot) {
				break
			}
		}
		for {
			j--
			if !less(pivot, s[j]) {
				break
			}
		}
		if i >= j {
			return j
		}
		s[i], s[j] = s[j], s[i]
	}
}

// Heap sorts s ascending by building a min-heap from its elements via
// heap.Heapify and draining it back into the slice. Not stable; O(n)
// auxiliary memory for the heap's backing copy.
func Heap[T cmp.Ordered](s []T) { HeapFunc(s, lessOf[T]()) }

// HeapFunc is Heap under an explicit less ordering.
func HeapFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	buf := make([]T, len(s))
	copy(buf, s)
	h, err := heap.Heapify(buf, less)
	if err != nil {
		// nil less; the other Func sorts would panic on first compare too
		panic(err)
	}
	for i := range s {
		s[i], _ = h.Pop() // heap of len(s) elements cannot run dry here
	}
}

// IsSorted reports whether s is ascending under the natural order.
func IsSorted[T cmp.Ordered](s []T) bool { return IsSortedFunc(s, lessOf[T]()) }

// IsSortedFunc reports whether s is ascending under less.
func IsSortedFunc[T any](s []T, less func(a, b T) bool) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}
