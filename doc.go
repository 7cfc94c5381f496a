// Package birel provides bidirectional relation indices for Go.
//
// An Index stores pairs (A, B) and answers lookups, membership tests and
// removals from either side in constant time. It keeps a forward index
// (A -> {B}) and an inverse index (B -> {A}) that always mirror each other.
// A Bijection narrows this to one-to-one bindings and rejects writes that
// would break uniqueness.
//
// # Quick Start
//
//	ix := birel.New[string, int]()
//	ix.Add("Kyle", 1)
//	ix.Add("Mary", 2)
//
//	ix.Get("Kyle")          // {1}
//	ix.GetInverse(1)        // {"Kyle"}
//	ix.RemoveAll("Kyle")    // cascades into the inverse index
//
// # Bijections
//
//	bi := birel.NewBijection[string, int]()
//	_ = bi.Set("Kyle", 1)
//	err := bi.Set("John", 1) // errors.Is(err, birel.ErrConflict)
//
// Set leaves the Bijection unchanged on conflict. Replace rebinds both sides
// unconditionally.
//
// # Enumeration
//
// All returns a restartable iter.Seq that walks the forward index key by key,
// draining each key's bucket before moving on. Keys appear in first-insertion
// order; within a bucket the order is arbitrary but stable while the index is
// unchanged. Enumerate exposes the same traversal as an explicit cursor.
//
// Enumeration reads the live index. Do not mutate while iterating; take a
// ToSlice snapshot instead.
//
// # Copies
//
// Get, GetInverse, ToMap, ToInverseMap, Invert and Clone all return
// independent copies. No method hands out internal buckets.
//
// # Concurrency
//
// Index and Bijection are not safe for concurrent use.
//
// # Dense IDs
//
// Package roaringrel offers the same relation for uint32 identifiers backed
// by Roaring bitmaps, with set algebra across buckets.
package birel
