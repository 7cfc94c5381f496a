package birel

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/raito-io/golang-set/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/birel/testutil"
)

func lessPair(x, y Pair[uint32, uint32]) bool {
	if x.A != y.A {
		return x.A < y.A
	}
	return x.B < y.B
}

func TestIndex_AddAndLookup(t *testing.T) {
	ix := New[string, int]()

	assert.True(t, ix.Add("Kyle", 1))
	assert.True(t, ix.Add("Mary", 2))

	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, set.NewSet(1), ix.Get("Kyle"))
	assert.Equal(t, set.NewSet("Kyle"), ix.GetInverse(1))
	assert.True(t, ix.HasPair("Kyle", 1))
	assert.True(t, ix.HasInversePair(1, "Kyle"))
	assert.False(t, ix.HasPair("Kyle", 2))
	assert.True(t, ix.Has("Mary"))
	assert.True(t, ix.HasInverse(2))
	assert.False(t, ix.Has("John"))
	assert.False(t, ix.HasInverse(3))
	require.NoError(t, ix.Verify())
}

func TestIndex_AddIsIdempotent(t *testing.T) {
	ix := New[string, int]()

	assert.True(t, ix.Add("a", 1))
	assert.False(t, ix.Add("a", 1))
	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, 1, ix.KeyLen())
	assert.Equal(t, 1, ix.InverseKeyLen())
}

func TestIndex_GetAbsentIsEmpty(t *testing.T) {
	ix := New[string, int]()

	got := ix.Get("missing")
	require.NotNil(t, got)
	assert.Empty(t, got)

	inv := ix.GetInverse(42)
	require.NotNil(t, inv)
	assert.Empty(t, inv)
}

func TestIndex_GetReturnsCopy(t *testing.T) {
	ix := New[string, int]()
	ix.Add("a", 1)

	got := ix.Get("a")
	got.Add(2)

	assert.False(t, ix.HasPair("a", 2))
	assert.Equal(t, 1, ix.Len())
}

func TestIndex_Remove(t *testing.T) {
	ix := New[string, string]()
	ix.Add("A", "x")
	ix.Add("A", "y")
	ix.Add("B", "x")

	ix.Remove("A", "x")
	assert.Equal(t, 2, ix.Len())
	assert.False(t, ix.HasPair("A", "x"))
	assert.Equal(t, set.NewSet("B"), ix.GetInverse("x"))

	ix.Remove("A", "y")
	assert.False(t, ix.Has("A"))
	assert.False(t, ix.HasInverse("y"))
	assert.Equal(t, 1, ix.KeyLen())
	assert.Equal(t, 1, ix.InverseKeyLen())

	// absent pair is a no-op
	ix.Remove("A", "y")
	ix.Remove("Z", "x")
	assert.Equal(t, 1, ix.Len())
	require.NoError(t, ix.Verify())
}

func TestIndex_AddThenRemoveRestoresState(t *testing.T) {
	ix := FromSeq(slices.Values([]Pair[string, int]{
		{"a", 1}, {"a", 2}, {"b", 2},
	}))
	before := ix.ToMap()
	beforeInv := ix.ToInverseMap()

	for _, p := range []Pair[string, int]{{"c", 3}, {"a", 3}, {"c", 1}} {
		ix.Add(p.A, p.B)
		ix.Remove(p.A, p.B)

		assert.Equal(t, 3, ix.Len())
		assert.Equal(t, before, ix.ToMap())
		assert.Equal(t, beforeInv, ix.ToInverseMap())
	}
}

func TestIndex_RemoveAll(t *testing.T) {
	ix := New[string, string]()
	ix.Add("A", "x")
	ix.Add("A", "y")

	ix.RemoveAll("A")

	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.GetInverse("x"))
	assert.Empty(t, ix.GetInverse("y"))
	assert.Equal(t, 0, ix.InverseKeyLen())
	require.NoError(t, ix.Verify())

	ix.RemoveAll("A")
	assert.Equal(t, 0, ix.Len())
}

func TestIndex_RemoveAllCascade(t *testing.T) {
	ix := New[string, int]()
	ix.Add("a", 1)
	ix.Add("a", 2)
	ix.Add("b", 1)
	ix.Add("c", 3)

	ix.RemoveAll("a")

	for _, b := range []int{1, 2, 3} {
		assert.False(t, ix.HasInversePair(b, "a"))
	}
	assert.Equal(t, set.NewSet("b"), ix.GetInverse(1))
	assert.False(t, ix.HasInverse(2))
	assert.Equal(t, 2, ix.Len())
	require.NoError(t, ix.Verify())
}

func TestIndex_RemoveAllInverse(t *testing.T) {
	ix := New[string, int]()
	ix.Add("a", 1)
	ix.Add("b", 1)
	ix.Add("b", 2)

	ix.RemoveAllInverse(1)

	assert.Equal(t, 1, ix.Len())
	assert.False(t, ix.Has("a"))
	assert.Equal(t, set.NewSet(2), ix.Get("b"))
	require.NoError(t, ix.Verify())
}

func TestIndex_Clear(t *testing.T) {
	ix := New[int, int](WithCapacity(8))
	for i := range 10 {
		ix.Add(i, i*2)
	}

	ix.Clear()

	assert.Equal(t, 0, ix.Len())
	assert.Equal(t, 0, ix.KeyLen())
	assert.Empty(t, ix.ToSlice())
	require.NoError(t, ix.Verify())

	ix.Add(1, 1)
	assert.Equal(t, 1, ix.Len())
}

func TestIndex_Invert(t *testing.T) {
	ix := New[string, int]()
	ix.Add("a", 1)
	ix.Add("a", 2)
	ix.Add("b", 2)

	inv := ix.Invert()

	assert.Equal(t, 3, inv.Len())
	assert.Equal(t, set.NewSet("a", "b"), inv.Get(2))
	assert.True(t, inv.HasInversePair("a", 1))
	require.NoError(t, inv.Verify())

	// independent of the source
	inv.Add(3, "c")
	inv.RemoveAll(2)
	assert.Equal(t, 3, ix.Len())
	assert.False(t, ix.Has("c"))
	assert.True(t, ix.HasPair("b", 2))
}

func TestIndex_InvertTwice(t *testing.T) {
	rng := testutil.NewRNG(4711)
	ix := New[uint32, uint32]()
	for _, p := range rng.Pairs(500, 32, 64) {
		ix.Add(p.A, p.B)
	}

	back := ix.Invert().Invert()

	diff := cmp.Diff(ix.ToSlice(), back.ToSlice(), cmpopts.SortSlices(lessPair))
	assert.Empty(t, diff)
	assert.True(t, ix.Equal(back))
}

func TestIndex_ToInverseSlice(t *testing.T) {
	ix := New[string, int]()
	ix.Add("a", 1)
	ix.Add("b", 1)
	ix.Add("b", 2)

	got := ix.ToInverseSlice()

	assert.ElementsMatch(t, []Pair[int, string]{{1, "a"}, {1, "b"}, {2, "b"}}, got)
	// inverse-key-major: all pairs for value 1 come before value 2
	assert.Equal(t, 1, got[0].A)
	assert.Equal(t, 1, got[1].A)
	assert.Equal(t, 2, got[2].A)
}

func TestIndex_ToMapIsDeepCopy(t *testing.T) {
	ix := New[string, int]()
	ix.Add("a", 1)

	m := ix.ToMap()
	m["a"].Add(99)
	m["z"] = set.NewSet(5)

	assert.Equal(t, set.NewSet(1), ix.Get("a"))
	assert.False(t, ix.Has("z"))
}

func TestIndex_FromMap(t *testing.T) {
	ix := FromMap(map[string][]int{
		"a": {1, 2, 2},
		"b": {2},
		"c": nil,
	})

	assert.Equal(t, 3, ix.Len())
	assert.False(t, ix.Has("c"))
	assert.Equal(t, set.NewSet("a", "b"), ix.GetInverse(2))
	assert.ElementsMatch(t, []string{"a", "b"}, ix.Keys())
	assert.ElementsMatch(t, []int{1, 2}, ix.InverseKeys())
}

func TestIndex_CloneIsIndependent(t *testing.T) {
	ix := New[string, int]()
	ix.Add("a", 1)
	ix.Add("a", 2)

	c := ix.Clone()
	assert.Equal(t, ix.ToSlice(), c.ToSlice())

	c.Remove("a", 1)
	assert.True(t, ix.HasPair("a", 1))
	assert.False(t, ix.Equal(c))
	require.NoError(t, c.Verify())
}

func TestIndex_Equal(t *testing.T) {
	x := FromSeq(slices.Values([]Pair[string, int]{{"a", 1}, {"b", 2}}))
	y := FromSeq(slices.Values([]Pair[string, int]{{"b", 2}, {"a", 1}}))
	z := FromSeq(slices.Values([]Pair[string, int]{{"a", 1}, {"b", 3}}))

	assert.True(t, x.Equal(y))
	assert.False(t, x.Equal(z))
}

func TestIndex_RandomOpsKeepInvariants(t *testing.T) {
	rng := testutil.NewRNG(4711)
	ix := New[uint32, uint32]()
	shadow := make(map[Pair[uint32, uint32]]struct{})

	for i, op := range rng.Ops(5000, 24, 24) {
		switch op.Kind {
		case testutil.OpAdd:
			_, existed := shadow[MakePair(op.A, op.B)]
			assert.Equal(t, !existed, ix.Add(op.A, op.B))
			shadow[MakePair(op.A, op.B)] = struct{}{}
		case testutil.OpRemove:
			ix.Remove(op.A, op.B)
			delete(shadow, MakePair(op.A, op.B))
		case testutil.OpRemoveAll:
			ix.RemoveAll(op.A)
			for p := range shadow {
				if p.A == op.A {
					delete(shadow, p)
				}
			}
		case testutil.OpRemoveAllInverse:
			ix.RemoveAllInverse(op.B)
			for p := range shadow {
				if p.B == op.B {
					delete(shadow, p)
				}
			}
		case testutil.OpClear:
			ix.Clear()
			clear(shadow)
		}

		if i%97 == 0 {
			require.NoError(t, ix.Verify(), "op %d (%s)", i, op.Kind)
		}
		require.Equal(t, len(shadow), ix.Len(), "op %d (%s)", i, op.Kind)
	}

	require.NoError(t, ix.Verify())
	n := 0
	for p := range ix.All() {
		_, ok := shadow[p]
		assert.True(t, ok, "unexpected pair %v", p)
		n++
	}
	assert.Equal(t, ix.Len(), n)
}

func TestIndex_VerifyDetectsCorruption(t *testing.T) {
	ix := New[string, int]()
	ix.Add("a", 1)
	ix.Add("b", 2)

	// break the mirror and the counter behind the index's back
	ix.rev.remove(1, "a")
	ix.count = 5

	err := ix.Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInconsistent)
	assert.Contains(t, err.Error(), "no mirror entry")
	assert.Contains(t, err.Error(), "count is 5")
}

func TestIndex_LogsCascade(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ix := New[string, int](WithLogger(logger.WithName("test")))
	ix.Add("a", 1)
	ix.Add("a", 2)

	ix.RemoveAll("a")
	ix.Clear()

	out := buf.String()
	assert.Contains(t, out, "cascading remove completed")
	assert.Contains(t, out, "removed=2")
	assert.Contains(t, out, "relation=test")
	assert.Contains(t, out, "relation cleared")
}

func TestIndex_NilLoggerOption(t *testing.T) {
	ix := New[string, int](WithLogger(nil), WithCapacity(-1))
	ix.Add("a", 1)
	ix.RemoveAll("a")

	assert.Equal(t, 0, ix.Len())
}
