package birel

import (
	"iter"

	"github.com/hashicorp/go-multierror"
)

// Bijection is a one-to-one relation: every A is bound to at most one B and
// every B to at most one A.
//
// Writes that would bind a key or a value a second time are rejected with a
// *ConflictError and leave the Bijection unchanged. Use Replace to rebind
// explicitly.
type Bijection[A, B comparable] struct {
	ix     *Index[A, B]
	logger *Logger
}

// NewBijection creates an empty Bijection.
func NewBijection[A, B comparable](optFns ...Option) *Bijection[A, B] {
	o := applyOptions(optFns)
	return &Bijection[A, B]{
		ix:     newIndex[A, B](o.capacity, o.logger),
		logger: o.logger,
	}
}

// BijectionFromSeq creates a Bijection by calling Set for every pair of seq
// in order. It stops at the first conflict and returns it together with the
// pairs bound so far.
func BijectionFromSeq[A, B comparable](seq iter.Seq[Pair[A, B]], optFns ...Option) (*Bijection[A, B], error) {
	bi := NewBijection[A, B](optFns...)
	for p := range seq {
		if err := bi.Set(p.A, p.B); err != nil {
			return bi, err
		}
	}
	return bi, nil
}

// Set binds a to b. Setting a pair that is already bound is a no-op.
//
// It returns a *ConflictError if a is bound to a different value or b is
// bound to a different key.
func (bi *Bijection[A, B]) Set(a A, b B) error {
	if cur, ok := bi.Get(a); ok && cur != b {
		err := &ConflictError[A, B]{
			Attempted: Pair[A, B]{A: a, B: b},
			Existing:  Pair[A, B]{A: a, B: cur},
			Side:      Forward,
		}
		bi.logger.LogConflict(err)
		return err
	}
	if cur, ok := bi.GetInverse(b); ok && cur != a {
		err := &ConflictError[A, B]{
			Attempted: Pair[A, B]{A: a, B: b},
			Existing:  Pair[A, B]{A: cur, B: b},
			Side:      Inverse,
		}
		bi.logger.LogConflict(err)
		return err
	}
	bi.ix.Add(a, b)
	return nil
}

// Replace binds a to b, first dropping any existing binding of a and of b.
// It never fails.
func (bi *Bijection[A, B]) Replace(a A, b B) {
	bi.ix.RemoveAll(a)
	bi.ix.RemoveAllInverse(b)
	bi.ix.Add(a, b)
}

// Get returns the value bound to a.
func (bi *Bijection[A, B]) Get(a A) (B, bool) {
	return first(bi.ix.fwd.get(a))
}

// GetInverse returns the key bound to b.
func (bi *Bijection[A, B]) GetInverse(b B) (A, bool) {
	return first(bi.ix.rev.get(b))
}

// Has reports whether a is bound.
func (bi *Bijection[A, B]) Has(a A) bool {
	return bi.ix.Has(a)
}

// HasInverse reports whether b is bound.
func (bi *Bijection[A, B]) HasInverse(b B) bool {
	return bi.ix.HasInverse(b)
}

// Delete removes the binding of a, if any.
func (bi *Bijection[A, B]) Delete(a A) {
	bi.ix.RemoveAll(a)
}

// DeleteInverse removes the binding of b, if any.
func (bi *Bijection[A, B]) DeleteInverse(b B) {
	bi.ix.RemoveAllInverse(b)
}

// Invert returns a new Bijection with the roles of A and B swapped. The
// result shares no state with bi.
func (bi *Bijection[A, B]) Invert() *Bijection[B, A] {
	return &Bijection[B, A]{
		ix:     bi.ix.Invert(),
		logger: bi.logger,
	}
}

// Len returns the number of bindings.
func (bi *Bijection[A, B]) Len() int {
	return bi.ix.Len()
}

// Clear removes every binding.
func (bi *Bijection[A, B]) Clear() {
	bi.ix.Clear()
}

// All iterates the bindings in key order.
func (bi *Bijection[A, B]) All() iter.Seq2[A, B] {
	return bi.ix.All2()
}

// ToMap returns the bindings as a plain map.
func (bi *Bijection[A, B]) ToMap() map[A]B {
	out := make(map[A]B, bi.ix.Len())
	for a, b := range bi.ix.All2() {
		out[a] = b
	}
	return out
}

// ToInverseMap returns the bindings as a plain map from value to key.
func (bi *Bijection[A, B]) ToInverseMap() map[B]A {
	out := make(map[B]A, bi.ix.Len())
	for a, b := range bi.ix.All2() {
		out[b] = a
	}
	return out
}

// Relation returns an independent copy of the bindings as an Index.
func (bi *Bijection[A, B]) Relation() *Index[A, B] {
	return bi.ix.Clone()
}

// Verify checks the Index invariants plus the one-binding-per-side rule.
func (bi *Bijection[A, B]) Verify() error {
	var result *multierror.Error
	if err := bi.ix.Verify(); err != nil {
		result = multierror.Append(result, err)
	}
	for a, bs := range bi.ix.fwd.m {
		if bs.Len() > 1 {
			result = multierror.Append(result, violation("key %v bound to %d values", a, bs.Len()))
		}
	}
	for b, as := range bi.ix.rev.m {
		if as.Len() > 1 {
			result = multierror.Append(result, violation("value %v bound to %d keys", b, as.Len()))
		}
	}
	return result.ErrorOrNil()
}
