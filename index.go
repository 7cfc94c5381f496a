package birel

import (
	"iter"

	"github.com/raito-io/golang-set/set"
)

// Index is a many-to-many relation between A and B with constant-time
// lookup, membership and removal from either side.
//
// Index keeps a forward index (A -> {B}) and an inverse index (B -> {A}) in
// lock-step. No key ever maps to an empty bucket, and Len is maintained
// incrementally.
//
// Index is not safe for concurrent use. Callers sharing an Index across
// goroutines must serialize access themselves.
type Index[A, B comparable] struct {
	fwd    buckets[A, B]
	rev    buckets[B, A]
	count  int
	logger *Logger
}

// New creates an empty Index.
func New[A, B comparable](optFns ...Option) *Index[A, B] {
	o := applyOptions(optFns)
	return newIndex[A, B](o.capacity, o.logger)
}

func newIndex[A, B comparable](capacity int, logger *Logger) *Index[A, B] {
	return &Index[A, B]{
		fwd:    newBuckets[A, B](capacity),
		rev:    newBuckets[B, A](capacity),
		logger: logger,
	}
}

// FromSeq creates an Index holding every pair of seq, added in order.
func FromSeq[A, B comparable](seq iter.Seq[Pair[A, B]], optFns ...Option) *Index[A, B] {
	ix := New[A, B](optFns...)
	for p := range seq {
		ix.Add(p.A, p.B)
	}
	return ix
}

// FromMap creates an Index from a mapping of keys to value lists. Keys are
// visited in map order, values in slice order; duplicate values collapse.
func FromMap[A, B comparable](m map[A][]B, optFns ...Option) *Index[A, B] {
	ix := New[A, B](append([]Option{WithCapacity(len(m))}, optFns...)...)
	for a, bs := range m {
		for _, b := range bs {
			ix.Add(a, b)
		}
	}
	return ix
}

// Add stores the pair (a, b). It reports whether the pair was new; adding a
// pair that is already present changes nothing.
func (ix *Index[A, B]) Add(a A, b B) bool {
	if !ix.fwd.add(a, b) {
		return false
	}
	ix.rev.add(b, a)
	ix.count++
	return true
}

// Has reports whether a has at least one associated value.
func (ix *Index[A, B]) Has(a A) bool {
	_, ok := ix.fwd.m[a]
	return ok
}

// HasPair reports whether (a, b) is stored.
func (ix *Index[A, B]) HasPair(a A, b B) bool {
	return ix.fwd.contains(a, b)
}

// HasInverse reports whether b has at least one associated key.
func (ix *Index[A, B]) HasInverse(b B) bool {
	_, ok := ix.rev.m[b]
	return ok
}

// HasInversePair reports whether (a, b) is stored, looked up from the
// inverse side.
func (ix *Index[A, B]) HasInversePair(b B, a A) bool {
	return ix.rev.contains(b, a)
}

// Get returns a copy of the values associated with a. The set is empty if a
// is absent.
func (ix *Index[A, B]) Get(a A) set.Set[B] {
	vs := ix.fwd.get(a)
	if vs == nil {
		return set.NewSet[B]()
	}
	return toSet(vs.Values())
}

// GetInverse returns a copy of the keys associated with b. The set is empty
// if b is absent.
func (ix *Index[A, B]) GetInverse(b B) set.Set[A] {
	as := ix.rev.get(b)
	if as == nil {
		return set.NewSet[A]()
	}
	return toSet(as.Values())
}

// Remove deletes the pair (a, b) if present. Keys left without values are
// pruned from both indices.
func (ix *Index[A, B]) Remove(a A, b B) {
	if !ix.fwd.remove(a, b) {
		return
	}
	ix.rev.remove(b, a)
	ix.count--
}

// RemoveAll deletes every pair whose first element is a.
func (ix *Index[A, B]) RemoveAll(a A) {
	bs := ix.fwd.take(a)
	if bs == nil {
		return
	}
	for b := range bs.All() {
		ix.rev.remove(b, a)
	}
	ix.count -= bs.Len()
	ix.logger.LogCascade(Forward, a, bs.Len())
}

// RemoveAllInverse deletes every pair whose second element is b.
func (ix *Index[A, B]) RemoveAllInverse(b B) {
	as := ix.rev.take(b)
	if as == nil {
		return
	}
	for a := range as.All() {
		ix.fwd.remove(a, b)
	}
	ix.count -= as.Len()
	ix.logger.LogCascade(Inverse, b, as.Len())
}

// Invert returns a new Index holding (b, a) for every stored (a, b). The
// result shares no state with ix.
func (ix *Index[A, B]) Invert() *Index[B, A] {
	out := newIndex[B, A](len(ix.rev.m), ix.logger)
	for p := range ix.All() {
		out.Add(p.B, p.A)
	}
	ix.logger.LogInvert(out.count)
	return out
}

// Clone returns an independent copy of ix with the same enumeration order.
func (ix *Index[A, B]) Clone() *Index[A, B] {
	return &Index[A, B]{
		fwd:    ix.fwd.clone(),
		rev:    ix.rev.clone(),
		count:  ix.count,
		logger: ix.logger,
	}
}

// Clear removes every pair.
func (ix *Index[A, B]) Clear() {
	removed := ix.count
	ix.fwd.clear()
	ix.rev.clear()
	ix.count = 0
	ix.logger.LogClear(removed)
}

// Len returns the number of stored pairs.
func (ix *Index[A, B]) Len() int {
	return ix.count
}

// KeyLen returns the number of distinct first elements.
func (ix *Index[A, B]) KeyLen() int {
	return len(ix.fwd.m)
}

// InverseKeyLen returns the number of distinct second elements.
func (ix *Index[A, B]) InverseKeyLen() int {
	return len(ix.rev.m)
}

// Keys returns the distinct first elements in enumeration order.
func (ix *Index[A, B]) Keys() []A {
	return ix.fwd.keys.Values()
}

// InverseKeys returns the distinct second elements in inverse enumeration
// order.
func (ix *Index[A, B]) InverseKeys() []B {
	return ix.rev.keys.Values()
}

// ToMap returns the forward index as a plain mapping of sets. The result
// shares no state with ix.
func (ix *Index[A, B]) ToMap() map[A]set.Set[B] {
	return toMap(&ix.fwd)
}

// ToInverseMap returns the inverse index as a plain mapping of sets.
func (ix *Index[A, B]) ToInverseMap() map[B]set.Set[A] {
	return toMap(&ix.rev)
}

// Equal reports whether ix and other hold the same pairs, regardless of
// enumeration order.
func (ix *Index[A, B]) Equal(other *Index[A, B]) bool {
	if ix.count != other.count || len(ix.fwd.m) != len(other.fwd.m) {
		return false
	}
	for p := range ix.All() {
		if !other.HasPair(p.A, p.B) {
			return false
		}
	}
	return true
}

func toSet[T comparable](vs []T) set.Set[T] {
	return set.NewSet(vs...)
}

func toMap[K, V comparable](b *buckets[K, V]) map[K]set.Set[V] {
	out := make(map[K]set.Set[V], len(b.m))
	for k, vs := range b.m {
		out[k] = toSet(vs.Values())
	}
	return out
}
