package hashtable_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adtkit/adtkit/hashtable"
)

func newStringTable(t *testing.T) *hashtable.Table[string, int] {
	t.Helper()
	ht, err := hashtable.New[string, int](hashtable.HashString)
	require.NoError(t, err)
	return ht
}

func TestNew_NilHash(t *testing.T) {
	ht, err := hashtable.New[string, int](nil)
	assert.Nil(t, ht)
	assert.ErrorIs(t, err, hashtable.ErrNilHash)
}

func TestTable_PutGet(t *testing.T) {
	ht := newStringTable(t)
	ht.Put("one", 1)
	ht.Put("two", 2)

	v, err := ht.Get("one")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = ht.Get("two")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, ht.Len())
}

func TestTable_PutReplaces(t *testing.T) {
	ht := newStringTable(t)
	ht.Put("k", 1)
	ht.Put("k", 2)

	v, err := ht.Get("k")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, ht.Len())
}

func TestTable_GetMissing(t *testing.T) {
	ht := newStringTable(t)
	_, err := ht.Get("ghost")
	assert.ErrorIs(t, err, hashtable.ErrKeyNotFound)
	assert.False(t, ht.Has("ghost"))
}

func TestTable_Delete(t *testing.T) {
	ht := newStringTable(t)
	ht.Put("a", 1)
	ht.Put("b", 2)

	require.NoError(t, ht.Delete("a"))
	assert.Equal(t, 1, ht.Len())
	_, err := ht.Get("a")
	assert.ErrorIs(t, err, hashtable.ErrKeyNotFound)

	assert.ErrorIs(t, ht.Delete("a"), hashtable.ErrKeyNotFound)
}

// TestTable_CollidingKeys forces every key into one bucket and checks the
// chain still behaves like a map.
func TestTable_CollidingKeys(t *testing.T) {
	ht, err := hashtable.New[string, int](func(string) uint64 { return 7 })
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		ht.Put(fmt.Sprintf("k%d", i), i)
	}
	assert.Equal(t, 10, ht.Len())
	for i := 0; i < 10; i++ {
		v, err := ht.Get(fmt.Sprintf("k%d", i))
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}

	require.NoError(t, ht.Delete("k5"))
	_, err = ht.Get("k5")
	assert.ErrorIs(t, err, hashtable.ErrKeyNotFound)
	v, err := ht.Get("k9")
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

// TestTable_RehashKeepsEntries grows well past the initial bucket count so
// several rehashes occur, then verifies every entry survived.
func TestTable_RehashKeepsEntries(t *testing.T) {
	ht, err := hashtable.New[int, int](hashtable.HashInt)
	require.NoError(t, err)

	const n = 10000
	for i := 0; i < n; i++ {
		ht.Put(i, i*i)
	}
	assert.Equal(t, n, ht.Len())
	for i := 0; i < n; i += 97 {
		v, err := ht.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i*i, v)
	}
}

func TestTable_Keys(t *testing.T) {
	ht := newStringTable(t)
	want := []string{"a", "b", "c"}
	for i, k := range want {
		ht.Put(k, i)
	}

	var got []string
	for k := range ht.Keys() {
		got = append(got, k)
	}
	sort.Strings(got)
	assert.Equal(t, want, got)
}

func TestTable_All(t *testing.T) {
	ht := newStringTable(t)
	ht.Put("x", 10)
	ht.Put("y", 20)

	got := map[string]int{}
	for k, v := range ht.All() {
		got[k] = v
	}
	assert.Equal(t, map[string]int{"x": 10, "y": 20}, got)
}
