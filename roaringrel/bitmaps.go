package roaringrel

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/birel"
)

func add(side map[uint32]*roaring.Bitmap, k, v uint32) bool {
	bm, ok := side[k]
	if !ok {
		bm = roaring.New()
		side[k] = bm
	}
	return bm.CheckedAdd(v)
}

// remove drops v from k's bitmap and the key itself once the bitmap is empty.
func remove(side map[uint32]*roaring.Bitmap, k, v uint32) bool {
	bm, ok := side[k]
	if !ok {
		return false
	}
	if !bm.CheckedRemove(v) {
		return false
	}
	if bm.IsEmpty() {
		delete(side, k)
	}
	return true
}

// cascade removes k from side and every mirror entry pointing back at it.
// It returns the number of pairs removed.
func cascade(side, mirror map[uint32]*roaring.Bitmap, k uint32) int {
	bm, ok := side[k]
	if !ok {
		return 0
	}
	delete(side, k)
	it := bm.Iterator()
	for it.HasNext() {
		remove(mirror, it.Next(), k)
	}
	return int(bm.GetCardinality())
}

func cloneOrEmpty(bm *roaring.Bitmap) *roaring.Bitmap {
	if bm == nil {
		return roaring.New()
	}
	return bm.Clone()
}

func cloneAll(side map[uint32]*roaring.Bitmap) map[uint32]*roaring.Bitmap {
	out := make(map[uint32]*roaring.Bitmap, len(side))
	for k, bm := range side {
		out[k] = bm.Clone()
	}
	return out
}

func intersect(side map[uint32]*roaring.Bitmap, keys []uint32) *roaring.Bitmap {
	if len(keys) == 0 {
		return roaring.New()
	}
	bms := make([]*roaring.Bitmap, 0, len(keys))
	for _, k := range keys {
		bm, ok := side[k]
		if !ok {
			return roaring.New()
		}
		bms = append(bms, bm)
	}
	// Start from the smallest bitmap to reduce work.
	slices.SortFunc(bms, func(x, y *roaring.Bitmap) int {
		return cmp.Compare(x.GetCardinality(), y.GetCardinality())
	})
	out := bms[0].Clone()
	for _, bm := range bms[1:] {
		out.And(bm)
		if out.IsEmpty() {
			break
		}
	}
	return out
}

func union(side map[uint32]*roaring.Bitmap, keys []uint32) *roaring.Bitmap {
	out := roaring.New()
	for _, k := range keys {
		if bm, ok := side[k]; ok {
			out.Or(bm)
		}
	}
	return out
}

func walk(side map[uint32]*roaring.Bitmap) iter.Seq[birel.Pair[uint32, uint32]] {
	return func(yield func(birel.Pair[uint32, uint32]) bool) {
		for _, k := range slices.Sorted(maps.Keys(side)) {
			it := side[k].Iterator()
			for it.HasNext() {
				if !yield(birel.MakePair(k, it.Next())) {
					return
				}
			}
		}
	}
}
