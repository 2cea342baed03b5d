package sorting_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adtkit/adtkit/sorting"
)

// sorts maps every natural-order sort to its name for table-driven runs.
var sorts = map[string]func([]int){
	"bubble":    sorting.Bubble[int],
	"insertion": sorting.Insertion[int],
	"selection": sorting.Selection[int],
	"shell":     sorting.Shell[int],
	"merge":     sorting.Merge[int],
	"quick":     sorting.Quick[int],
	"heap":      sorting.Heap[int],
}

func TestSorts_FixedInputs(t *testing.T) {
	inputs := map[string][]int{
		"empty":      {},
		"single":     {1},
		"pair":       {2, 1},
		"sorted":     {1, 2, 3, 4, 5},
		"reversed":   {5, 4, 3, 2, 1},
		"duplicates": {3, 1, 3, 2, 1, 3},
		"all equal":  {7, 7, 7, 7},
		"negatives":  {0, -5, 3, -1, 2},
	}
	for name, fn := range sorts {
		for inputName, input := range inputs {
			t.Run(name+"/"+inputName, func(t *testing.T) {
				got := append([]int(nil), input...)
				fn(got)

				want := append([]int(nil), input...)
				sort.Ints(want)
				assert.Equal(t, want, got)
			})
		}
	}
}

func TestSorts_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for name, fn := range sorts {
		t.Run(name, func(t *testing.T) {
			input := make([]int, 500)
			for i := range input {
				input[i] = rng.Intn(100) - 50
			}
			got := append([]int(nil), input...)
			fn(got)

			want := append([]int(nil), input...)
			sort.Ints(want)
			assert.Equal(t, want, got)
		})
	}
}

type record struct {
	key int
	seq int // original position, to observe stability
}

func byKey(a, b record) bool { return a.key < b.key }

// TestMergeFunc_Stable checks that equal keys keep their input order.
func TestMergeFunc_Stable(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := make([]record, 200)
	for i := range s {
		s[i] = record{key: rng.Intn(10), seq: i}
	}
	sorting.MergeFunc(s, byKey)

	for i := 1; i < len(s); i++ {
		if s[i].key == s[i-1].key {
			assert.Less(t, s[i-1].seq, s[i].seq,
				"equal keys out of arrival order at %d", i)
		}
	}
}

// TestInsertionFunc_Stable: insertion sort shifts strictly-greater
// elements only, so ties never reorder.
func TestInsertionFunc_Stable(t *testing.T) {
	s := []record{{2, 0}, {1, 1}, {2, 2}, {1, 3}, {2, 4}}
	sorting.InsertionFunc(s, byKey)
	assert.Equal(t, []record{{1, 1}, {1, 3}, {2, 0}, {2, 2}, {2, 4}}, s)
}

// Already-sorted input is the pathological case for the partition: a
// badly placed pivot makes the split degenerate and the recursion never
// shrink. Every sorted prefix length must terminate.
func TestQuick_SortedInputTerminates(t *testing.T) {
	for n := 2; n <= 64; n++ {
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}
		want := append([]int(nil), s...)
		sorting.Quick(s)
		assert.Equal(t, want, s, "len %d", n)
	}

	pair := []int{1, 2}
	sorting.Quick(pair)
	assert.Equal(t, []int{1, 2}, pair)

	equal := make([]int, 33)
	sorting.Quick(equal)
	assert.Equal(t, make([]int, 33), equal)
}

func TestQuickFunc_Descending(t *testing.T) {
	s := []int{3, 1, 4, 1, 5, 9, 2, 6}
	sorting.QuickFunc(s, func(a, b int) bool { return a > b })
	assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1, 1}, s)
}

func TestIsSorted(t *testing.T) {
	assert.True(t, sorting.IsSorted([]int{}))
	assert.True(t, sorting.IsSorted([]int{1}))
	assert.True(t, sorting.IsSorted([]int{1, 1, 2}))
	assert.False(t, sorting.IsSorted([]int{2, 1}))

	desc := func(a, b int) bool { return a > b }
	assert.True(t, sorting.IsSortedFunc([]int{3, 2, 1}, desc))
	assert.False(t, sorting.IsSortedFunc([]int{1, 2}, desc))
}
