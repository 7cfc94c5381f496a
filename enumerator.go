package birel

import "iter"

// Enumerator is a cursor over the pairs of an Index. It walks one direction
// key by key and drains each key's bucket before moving on.
//
// An Enumerator reads the live index. Mutating the index while a traversal
// is in progress yields an unspecified sequence; take a ToSlice snapshot
// first if that is needed.
//
//	e := ix.Enumerate()
//	for e.Next() {
//	    p := e.Pair()
//	    ...
//	}
type Enumerator[A, B comparable] struct {
	src *buckets[A, B]
	ki  int
	vi  int
	cur Pair[A, B]
}

func newEnumerator[A, B comparable](src *buckets[A, B]) *Enumerator[A, B] {
	return &Enumerator[A, B]{src: src}
}

// Next advances to the next pair. It returns false once the traversal is
// exhausted.
func (e *Enumerator[A, B]) Next() bool {
	for {
		k, ok := e.src.keys.At(e.ki)
		if !ok {
			return false
		}
		if vs := e.src.get(k); vs != nil {
			if v, ok := vs.At(e.vi); ok {
				e.vi++
				e.cur = Pair[A, B]{A: k, B: v}
				return true
			}
		}
		e.ki++
		e.vi = 0
	}
}

// Pair returns the pair at the current position. It is the zero Pair before
// the first call to Next.
func (e *Enumerator[A, B]) Pair() Pair[A, B] {
	return e.cur
}

// Reset rewinds the cursor to the start of the index.
func (e *Enumerator[A, B]) Reset() {
	e.ki, e.vi = 0, 0
	e.cur = Pair[A, B]{}
}

func (e *Enumerator[A, B]) seq() iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		e.Reset()
		for e.Next() {
			if !yield(e.cur) {
				return
			}
		}
	}
}

// Enumerate returns a cursor over all pairs, forward-key-major.
func (ix *Index[A, B]) Enumerate() *Enumerator[A, B] {
	return newEnumerator(&ix.fwd)
}

// EnumerateInverse returns a cursor over all pairs as (B, A), inverse-key-major.
func (ix *Index[A, B]) EnumerateInverse() *Enumerator[B, A] {
	return newEnumerator(&ix.rev)
}

// All returns every stored pair exactly once, forward-key-major. Each call
// starts a fresh traversal. The order is stable for an unchanged index.
func (ix *Index[A, B]) All() iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		ix.Enumerate().seq()(yield)
	}
}

// All2 is All in key/value form.
func (ix *Index[A, B]) All2() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for p := range ix.All() {
			if !yield(p.A, p.B) {
				return
			}
		}
	}
}

// AllInverse returns every stored pair as (B, A), inverse-key-major.
func (ix *Index[A, B]) AllInverse() iter.Seq[Pair[B, A]] {
	return func(yield func(Pair[B, A]) bool) {
		ix.EnumerateInverse().seq()(yield)
	}
}

// ToSlice materializes All.
func (ix *Index[A, B]) ToSlice() []Pair[A, B] {
	out := make([]Pair[A, B], 0, ix.count)
	for p := range ix.All() {
		out = append(out, p)
	}
	return out
}

// ToInverseSlice materializes AllInverse.
func (ix *Index[A, B]) ToInverseSlice() []Pair[B, A] {
	out := make([]Pair[B, A], 0, ix.count)
	for p := range ix.AllInverse() {
		out = append(out, p)
	}
	return out
}
