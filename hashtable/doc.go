// Package hashtable implements a separate-chaining hash table — the
// from-scratch counterpart of the built-in map.
//
// What
//
//   - Table[K, V]: Put (upsert), Get, Delete, Len, IsEmpty over buckets of
//     key/value entries; collisions chain inside a bucket slice.
//   - The hash function is supplied by the caller; HashString (FNV-1a) and
//     HashInt cover the common key types.
//   - The table rehashes into twice as many buckets when the load factor
//     (entries ÷ buckets) exceeds 0.75, keeping chains short.
//   - Keys() and All() iterate entries in unspecified order, like the
//     built-in map.
//
// Why
//
//   - The classic open-the-hood exercise: hashing, collision chaining,
//     load factor and amortized growth, without the runtime's magic.
//
// Errors
//
//   - ErrKeyNotFound — Get or Delete of an absent key.
//   - ErrNilHash     — New given a nil hash function.
//
// Usage
//
//	ht, _ := hashtable.New[string, int](hashtable.HashString)
//	ht.Put("a", 1)
//	v, _ := ht.Get("a") // 1
//
// Complexity: expected O(1) per operation under a well-spread hash;
// O(n) worst case when every key collides. Rehash is O(n), amortized O(1)
// per Put. Memory: O(n + buckets).
package hashtable
