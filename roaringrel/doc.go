// Package roaringrel provides a relation index over dense uint32 identifiers
// backed by Roaring bitmaps.
//
// It is the compressed counterpart of birel.Index for workloads such as
// document -> tag or user -> group, where both sides are numeric IDs and
// buckets can grow large. Buckets support set algebra directly:
//
//	ix := roaringrel.New()
//	ix.Add(1, 10)
//	ix.Add(1, 11)
//	ix.Add(2, 11)
//
//	shared := ix.Intersect(1, 2)        // {11}
//	owners := ix.UnionInverse(10, 11)   // {1, 2}
//
// Enumeration is key-ascending, then value-ascending.
package roaringrel
