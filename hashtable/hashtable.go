package hashtable

import (
	"errors"
	"hash/fnv"
	"iter"
)

// Sentinel errors for hash table operations.
var (
	// ErrKeyNotFound indicates Get or Delete of a key that is not present.
	ErrKeyNotFound = errors.New("hashtable: key not found")

	// ErrNilHash indicates a nil hash function was supplied to New.
	ErrNilHash = errors.New("hashtable: nil hash function")
)

const (
	// initialBuckets is the bucket count allocated by New.
	initialBuckets = 16

	// maxLoadFactor is the entries-per-bucket threshold that triggers a
	// rehash into twice as many buckets.
	maxLoadFactor = 0.75
)

// HashString hashes a string key with FNV-1a.
func HashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s)) //nolint:errcheck // fnv never fails
	return h.Sum64()
}

// HashInt hashes an int key with a 64-bit splitmix-style finalizer.
func HashInt(k int) uint64 {
	x := uint64(k)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// entry is a single key/value pair inside a bucket chain.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Table is a separate-chaining hash table. The zero value is NOT ready to
// use; construct with New.
type Table[K comparable, V any] struct {
	buckets [][]entry[K, V]
	size    int
	hash    func(K) uint64
}

// New returns an empty table using hash to place keys.
// Returns ErrNilHash if hash is nil.
func New[K comparable, V any](hash func(K) uint64) (*Table[K, V], error) {
	if hash == nil {
		return nil, ErrNilHash
	}
	return &Table[K, V]{
		buckets: make([][]entry[K, V], initialBuckets),
		hash:    hash,
	}, nil
}

// Put inserts or replaces the value stored under key.
func (t *Table[K, V]) Put(key K, value V) {
	if float64(t.size+1)/float64(len(t.buckets)) > maxLoadFactor {
		t.rehash()
	}
	b := t.bucketOf(key)
	for i := range t.buckets[b] {
		if t.buckets[b][i].key == key {
			t.buckets[b][i].value = value
			return
		}
	}
	t.buckets[b] = append(t.buckets[b], entry[K, V]{key: key, value: value})
	t.size++
}

// Get returns the value stored under key.
// Returns ErrKeyNotFound if the key is absent.
func (t *Table[K, V]) Get(key K) (V, error) {
	b := t.bucketOf(key)
	for i := range t.buckets[b] {
		if t.buckets[b][i].key == key {
			return t.buckets[b][i].value, nil
		}
	}
	var zero V
	return zero, ErrKeyNotFound
}

// Has reports whether key is present.
func (t *Table[K, V]) Has(key K) bool {
	_, err := t.Get(key)
	return err == nil
}

// Delete removes the entry stored under key.
// Returns ErrKeyNotFound if the key is absent.
func (t *Table[K, V]) Delete(key K) error {
	b := t.bucketOf(key)
	chain := t.buckets[b]
	for i := range chain {
		if chain[i].key == key {
			last := len(chain) - 1
			chain[i] = chain[last]
			t.buckets[b] = chain[:last]
			t.size--
			return nil
		}
	}
	return ErrKeyNotFound
}

// Len returns the number of stored entries.
func (t *Table[K, V]) Len() int { return t.size }

// IsEmpty reports whether the table holds no entries.
func (t *Table[K, V]) IsEmpty() bool { return t.size == 0 }

// Keys iterates the stored keys in unspecified order.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, chain := range t.buckets {
			for i := range chain {
				if !yield(chain[i].key) {
					return
				}
			}
		}
	}
}

// All iterates (key, value) pairs in unspecified order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, chain := range t.buckets {
			for i := range chain {
				if !yield(chain[i].key, chain[i].value) {
					return
				}
			}
		}
	}
}

// bucketOf maps a key to its bucket index.
func (t *Table[K, V]) bucketOf(key K) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// rehash doubles the bucket count and redistributes every entry.
func (t *Table[K, V]) rehash() {
	old := t.buckets
	t.buckets = make([][]entry[K, V], len(old)*2)
	for _, chain := range old {
		for _, e := range chain {
			b := t.bucketOf(e.key)
			t.buckets[b] = append(t.buckets[b], e)
		}
	}
}
