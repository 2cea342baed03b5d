// Package sorting implements the classic comparison sorts over generic
// slices, each in its textbook form.
//
// What
//
//   - Quadratic family: Bubble (with early exit), Insertion, Selection.
//   - Gap family: Shell with the Knuth 3h+1 gap sequence.
//   - Divide & conquer: Merge (stable, O(n) auxiliary) and Quick
//     (in-place, middle-element pivot, Hoare partition).
//   - Heap: heapsort driven by the adtkit heap package — build a heap from
//     the elements, drain it back in ascending order.
//   - Every sort has a natural-order form (cmp.Ordered element types) and
//     a Func form taking an explicit less comparator.
//   - IsSorted / IsSortedFunc report whether a slice is already ordered.
//
// All sorts arrange the slice in place, ascending under the ordering in
// use; none of them allocates except Merge and Heap (O(n) auxiliary each).
//
// Why
//
//   - The sorting chapter of every algorithms course: the point is the
//     contrast — O(n²) vs O(n log n), stable vs unstable, in-place vs
//     auxiliary — visible in one package with one shared contract.
//
// Complexity
//
//   - Bubble/Insertion/Selection: O(n²) worst, Bubble/Insertion O(n) on
//     sorted input. Shell: O(n^1.5) with Knuth gaps.
//   - Merge/Quick/Heap: O(n log n) (Quick O(n²) degenerate).
//   - Stable: Bubble, Insertion, Merge. Unstable: Selection, Shell,
//     Quick, Heap.
//
// Usage
//
//	s := []int{3, 1, 2}
//	sorting.Quick(s)             // [1 2 3]
//	sorting.MergeFunc(people, byAge)
package sorting
