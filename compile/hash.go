package compile

import "hash/fnv"

// Hash is the fixed-width content hash of an item path.  The hash, not the
// path string, is the key used for macro and function lookup: identical paths
// always hash identically within one compilation, and the mapping is a
// one-way lookup key, never reversed.
type Hash uint64

// TypeHash computes the content hash of an item path.  Segment boundaries are
// included in the hashed content so `a::bc` and `ab::c` hash differently.
func TypeHash(item Item) Hash {
	a := fnv.New64a()
	for _, seg := range item.Segments() {
		a.Write([]byte(seg))
		a.Write([]byte{0})
	}

	return Hash(a.Sum64())
}
