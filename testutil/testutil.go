package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// Pair is a generated (A, B) relationship.
type Pair struct {
	A uint32
	B uint32
}

// OpKind names a relation mutation.
type OpKind uint8

const (
	OpAdd OpKind = iota
	OpRemove
	OpRemoveAll
	OpRemoveAllInverse
	OpClear
)

func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpRemoveAll:
		return "remove-all"
	case OpRemoveAllInverse:
		return "remove-all-inverse"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Op is one generated mutation. RemoveAll uses only A, RemoveAllInverse only
// B, Clear neither.
type Op struct {
	Kind OpKind
	A    uint32
	B    uint32
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Zipf returns a Zipfian-distributed value in [0, n).
// s=1.0 gives standard Zipf, larger s gives a heavier head.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// Pairs generates num pairs with Zipfian keys in [0, keySpace) and uniform
// values in [0, valueSpace). Duplicates are possible.
func (r *RNG) Pairs(num, keySpace, valueSpace int) []Pair {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Pair, num)
	for i := range out {
		out[i] = Pair{
			A: uint32(r.zipfLocked(keySpace, 1.2)),
			B: uint32(r.rand.Intn(valueSpace)),
		}
	}
	return out
}

// Ops generates a mutation stream over keys in [0, keySpace) and values in
// [0, valueSpace). Adds dominate so the relation grows; about one op in a
// thousand is a Clear.
func (r *RNG) Ops(num, keySpace, valueSpace int) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Op, num)
	for i := range out {
		op := Op{
			A: uint32(r.zipfLocked(keySpace, 1.2)),
			B: uint32(r.rand.Intn(valueSpace)),
		}
		switch p := r.rand.Intn(1000); {
		case p == 0:
			op.Kind = OpClear
		case p < 600:
			op.Kind = OpAdd
		case p < 850:
			op.Kind = OpRemove
		case p < 925:
			op.Kind = OpRemoveAll
		default:
			op.Kind = OpRemoveAllInverse
		}
		out[i] = op
	}
	return out
}
