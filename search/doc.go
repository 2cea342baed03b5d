// Package search implements linear and binary search over generic slices.
//
// What
//
//   - Linear: scan left to right, first match wins — works on any
//     comparable element type, sorted or not.
//   - LinearFunc: first element satisfying a predicate.
//   - Binary: halve a sorted slice until the target is cornered. Requires
//     input ascending under the natural order; the Func variant takes a
//     three-way comparator. Behavior on unsorted input is undefined, as
//     the textbook contract states.
//   - A miss returns index -1 and ErrNotFound.
//
// Why
//
//   - The first lesson in preconditions buying speed: O(n) with no
//     assumptions vs O(log n) once sortedness is promised.
//
// Errors
//
//   - ErrNotFound — the target is not in the slice (or, for Binary on
//     unsorted input, was not where sortedness said it had to be).
//
// Usage
//
//	i, err := search.Binary([]int{1, 3, 5, 7}, 5) // 2, nil
//	_, err = search.Linear([]string{"a"}, "z")    // ErrNotFound
//
// Complexity: Linear O(n); Binary O(log n). Both O(1) memory.
package search
