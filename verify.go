package birel

import "github.com/hashicorp/go-multierror"

// Verify re-derives the index invariants from scratch and reports every
// violation found. It returns nil for a consistent index.
//
// Verify walks both indices and is O(Len). It exists for tests and debug
// assertions, not for hot paths.
func (ix *Index[A, B]) Verify() error {
	var result *multierror.Error

	fwdPairs := verifySide(&ix.fwd, &ix.rev, Forward, &result)
	revPairs := verifySide(&ix.rev, &ix.fwd, Inverse, &result)

	if fwdPairs != ix.count {
		result = multierror.Append(result, violation("forward index holds %d pairs, count is %d", fwdPairs, ix.count))
	}
	if revPairs != ix.count {
		result = multierror.Append(result, violation("inverse index holds %d pairs, count is %d", revPairs, ix.count))
	}

	return result.ErrorOrNil()
}

// verifySide checks one direction against its mirror and returns the number
// of pairs it holds.
func verifySide[K, V comparable](side *buckets[K, V], mirror *buckets[V, K], name Side, result **multierror.Error) int {
	if side.keys.Len() != len(side.m) {
		*result = multierror.Append(*result, violation("%s index orders %d keys but maps %d", name, side.keys.Len(), len(side.m)))
	}

	pairs := 0
	for k, vs := range side.m {
		if !side.keys.Contains(k) {
			*result = multierror.Append(*result, violation("%s key %v missing from key order", name, k))
		}
		if vs.Len() == 0 {
			*result = multierror.Append(*result, violation("%s key %v maps to an empty bucket", name, k))
		}
		for v := range vs.All() {
			if !mirror.contains(v, k) {
				*result = multierror.Append(*result, violation("%s pair (%v, %v) has no mirror entry", name, k, v))
			}
		}
		pairs += vs.Len()
	}
	return pairs
}
