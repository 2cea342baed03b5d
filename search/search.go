package search

import (
	"cmp"
	"errors"
)

// ErrNotFound indicates the target is absent from the slice.
var ErrNotFound = errors.New("search: target not found")

// Linear scans s left to right and returns the index of the first element
// equal to target, or -1 and ErrNotFound.
func Linear[T comparable](s []T, target T) (int, error) {
	for i := range s {
		if s[i] == target {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// LinearFunc scans s left to right and returns the index of the first
// element satisfying pred, or -1 and ErrNotFound.
func LinearFunc[T any](s []T, pred func(T) bool) (int, error) {
	for i := range s {
		if pred(s[i]) {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// Binary searches s, which must be sorted ascending under the natural
// order, and returns an index holding target, or -1 and ErrNotFound.
// The result on unsorted input is undefined.
func Binary[T cmp.Ordered](s []T, target T) (int, error) {
	return BinaryFunc(s, target, cmp.Compare[T])
}

// BinaryFunc is Binary under a three-way comparator: compare(a, b) must
// return <0, 0, >0 for a<b, a==b, a>b, and s must be sorted ascending
// under that same ordering.
func BinaryFunc[T any](s []T, target T, compare func(a, b T) int) (int, error) {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1) // avoids overflow on huge slices
		switch c := compare(target, s[mid]); {
		case c < 0:
			hi = mid - 1
		case c > 0:
			lo = mid + 1
		default:
			return mid, nil
		}
	}
	return -1, ErrNotFound
}
