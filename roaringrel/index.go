package roaringrel

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/hupe1980/birel"
)

// Index is a many-to-many relation between uint32 identifiers whose buckets
// are Roaring bitmaps.
//
// It has the same invariants as birel.Index: both directions mirror each
// other, emptied bitmaps are dropped, and Len is maintained incrementally.
// Index is not safe for concurrent use.
type Index struct {
	fwd   map[uint32]*roaring.Bitmap
	rev   map[uint32]*roaring.Bitmap
	count int
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		fwd: make(map[uint32]*roaring.Bitmap),
		rev: make(map[uint32]*roaring.Bitmap),
	}
}

// FromSeq creates an Index holding every pair of seq.
func FromSeq(seq iter.Seq[birel.Pair[uint32, uint32]]) *Index {
	ix := New()
	for p := range seq {
		ix.Add(p.A, p.B)
	}
	return ix
}

// Add stores (a, b) and reports whether it was new.
func (ix *Index) Add(a, b uint32) bool {
	if !add(ix.fwd, a, b) {
		return false
	}
	add(ix.rev, b, a)
	ix.count++
	return true
}

// Remove deletes (a, b) if present.
func (ix *Index) Remove(a, b uint32) {
	if !remove(ix.fwd, a, b) {
		return
	}
	remove(ix.rev, b, a)
	ix.count--
}

// RemoveAll deletes every pair whose first element is a.
func (ix *Index) RemoveAll(a uint32) {
	ix.count -= cascade(ix.fwd, ix.rev, a)
}

// RemoveAllInverse deletes every pair whose second element is b.
func (ix *Index) RemoveAllInverse(b uint32) {
	ix.count -= cascade(ix.rev, ix.fwd, b)
}

// Has reports whether a has at least one value.
func (ix *Index) Has(a uint32) bool {
	_, ok := ix.fwd[a]
	return ok
}

// HasPair reports whether (a, b) is stored.
func (ix *Index) HasPair(a, b uint32) bool {
	bm, ok := ix.fwd[a]
	return ok && bm.Contains(b)
}

// HasInverse reports whether b has at least one key.
func (ix *Index) HasInverse(b uint32) bool {
	_, ok := ix.rev[b]
	return ok
}

// HasInversePair reports whether (a, b) is stored, looked up from b.
func (ix *Index) HasInversePair(b, a uint32) bool {
	bm, ok := ix.rev[b]
	return ok && bm.Contains(a)
}

// Get returns a copy of the values of a. The bitmap is empty if a is absent.
func (ix *Index) Get(a uint32) *roaring.Bitmap {
	return cloneOrEmpty(ix.fwd[a])
}

// GetInverse returns a copy of the keys of b.
func (ix *Index) GetInverse(b uint32) *roaring.Bitmap {
	return cloneOrEmpty(ix.rev[b])
}

// Intersect returns the values shared by all given keys. With no keys, or
// when any key is absent, the result is empty.
func (ix *Index) Intersect(keys ...uint32) *roaring.Bitmap {
	return intersect(ix.fwd, keys)
}

// Union returns the values related to any of the given keys.
func (ix *Index) Union(keys ...uint32) *roaring.Bitmap {
	return union(ix.fwd, keys)
}

// IntersectInverse returns the keys shared by all given values.
func (ix *Index) IntersectInverse(values ...uint32) *roaring.Bitmap {
	return intersect(ix.rev, values)
}

// UnionInverse returns the keys related to any of the given values.
func (ix *Index) UnionInverse(values ...uint32) *roaring.Bitmap {
	return union(ix.rev, values)
}

// Len returns the number of stored pairs.
func (ix *Index) Len() int {
	return ix.count
}

// Keys returns the distinct first elements in ascending order.
func (ix *Index) Keys() []uint32 {
	return slices.Sorted(maps.Keys(ix.fwd))
}

// InverseKeys returns the distinct second elements in ascending order.
func (ix *Index) InverseKeys() []uint32 {
	return slices.Sorted(maps.Keys(ix.rev))
}

// All returns every pair once, key-ascending then value-ascending.
func (ix *Index) All() iter.Seq[birel.Pair[uint32, uint32]] {
	return walk(ix.fwd)
}

// AllInverse returns every pair as (b, a), ascending.
func (ix *Index) AllInverse() iter.Seq[birel.Pair[uint32, uint32]] {
	return walk(ix.rev)
}

// ToSlice materializes All.
func (ix *Index) ToSlice() []birel.Pair[uint32, uint32] {
	out := make([]birel.Pair[uint32, uint32], 0, ix.count)
	for p := range ix.All() {
		out = append(out, p)
	}
	return out
}

// ToInverseSlice materializes AllInverse.
func (ix *Index) ToInverseSlice() []birel.Pair[uint32, uint32] {
	out := make([]birel.Pair[uint32, uint32], 0, ix.count)
	for p := range ix.AllInverse() {
		out = append(out, p)
	}
	return out
}

// Invert returns an independent Index with both directions swapped.
func (ix *Index) Invert() *Index {
	return &Index{
		fwd:   cloneAll(ix.rev),
		rev:   cloneAll(ix.fwd),
		count: ix.count,
	}
}

// Clone returns an independent copy.
func (ix *Index) Clone() *Index {
	return &Index{
		fwd:   cloneAll(ix.fwd),
		rev:   cloneAll(ix.rev),
		count: ix.count,
	}
}

// Clear removes every pair.
func (ix *Index) Clear() {
	clear(ix.fwd)
	clear(ix.rev)
	ix.count = 0
}

// ToRelation copies the pairs into a generic birel.Index.
func (ix *Index) ToRelation(optFns ...birel.Option) *birel.Index[uint32, uint32] {
	return birel.FromSeq(ix.All(), optFns...)
}

// Verify re-derives the invariants and reports every violation.
func (ix *Index) Verify() error {
	var result *multierror.Error

	fwdPairs := verifySide(ix.fwd, ix.rev, birel.Forward, &result)
	revPairs := verifySide(ix.rev, ix.fwd, birel.Inverse, &result)

	if fwdPairs != ix.count {
		result = multierror.Append(result, violation("forward index holds %d pairs, count is %d", fwdPairs, ix.count))
	}
	if revPairs != ix.count {
		result = multierror.Append(result, violation("inverse index holds %d pairs, count is %d", revPairs, ix.count))
	}
	return result.ErrorOrNil()
}

func verifySide(side, mirror map[uint32]*roaring.Bitmap, name birel.Side, result **multierror.Error) int {
	pairs := 0
	for k, bm := range side {
		if bm.IsEmpty() {
			*result = multierror.Append(*result, violation("%s key %d maps to an empty bitmap", name, k))
		}
		it := bm.Iterator()
		for it.HasNext() {
			v := it.Next()
			if m, ok := mirror[v]; !ok || !m.Contains(k) {
				*result = multierror.Append(*result, violation("%s pair (%d, %d) has no mirror entry", name, k, v))
			}
		}
		pairs += int(bm.GetCardinality())
	}
	return pairs
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", birel.ErrInconsistent, fmt.Sprintf(format, args...))
}
