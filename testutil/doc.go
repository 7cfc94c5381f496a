// Package testutil provides testing utilities for birel.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for relation workloads so that property
// tests can replay the same operation stream against several
// implementations.
//
// # Random Pairs
//
//	rng := testutil.NewRNG(seed)
//	pairs := rng.Pairs(1000, 64, 256)   // 1000 pairs, keys < 64, values < 256
//
// # Operation Streams
//
//	for _, op := range rng.Ops(10_000, 32, 32) {
//	    switch op.Kind {
//	    case testutil.OpAdd:
//	        ix.Add(op.A, op.B)
//	    ...
//	    }
//	}
//
// Keys are drawn from a Zipfian distribution so a few keys carry large
// buckets, which is where cascading removals get exercised.
package testutil
