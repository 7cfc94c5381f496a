package birel

import "github.com/hupe1980/birel/internal/orderedset"

// buckets is one direction of the relation: key -> non-empty set of values.
// keys records key order for enumeration and always holds exactly the keys
// of m.
type buckets[K, V comparable] struct {
	keys *orderedset.Set[K]
	m    map[K]*orderedset.Set[V]
}

func newBuckets[K, V comparable](capacity int) buckets[K, V] {
	return buckets[K, V]{
		keys: orderedset.New[K](capacity),
		m:    make(map[K]*orderedset.Set[V], capacity),
	}
}

func (b *buckets[K, V]) add(k K, v V) bool {
	vs, ok := b.m[k]
	if !ok {
		vs = orderedset.New[V](1)
		b.m[k] = vs
		b.keys.Add(k)
	}
	return vs.Add(v)
}

// remove deletes v from k's bucket and prunes the key once the bucket is
// empty.
func (b *buckets[K, V]) remove(k K, v V) bool {
	vs, ok := b.m[k]
	if !ok {
		return false
	}
	if !vs.Remove(v) {
		return false
	}
	if vs.Len() == 0 {
		delete(b.m, k)
		b.keys.Remove(k)
	}
	return true
}

// take detaches k's whole bucket. It returns nil if k is absent.
func (b *buckets[K, V]) take(k K) *orderedset.Set[V] {
	vs, ok := b.m[k]
	if !ok {
		return nil
	}
	delete(b.m, k)
	b.keys.Remove(k)
	return vs
}

func (b *buckets[K, V]) get(k K) *orderedset.Set[V] {
	return b.m[k]
}

func (b *buckets[K, V]) contains(k K, v V) bool {
	vs, ok := b.m[k]
	return ok && vs.Contains(v)
}

func (b *buckets[K, V]) clone() buckets[K, V] {
	c := buckets[K, V]{
		keys: b.keys.Clone(),
		m:    make(map[K]*orderedset.Set[V], len(b.m)),
	}
	for k, vs := range b.m {
		c.m[k] = vs.Clone()
	}
	return c
}

func (b *buckets[K, V]) clear() {
	b.keys.Clear()
	clear(b.m)
}

// first returns the first element of vs, or false if vs is nil or empty.
func first[T comparable](vs *orderedset.Set[T]) (T, bool) {
	if vs == nil {
		var zero T
		return zero, false
	}
	return vs.At(0)
}
