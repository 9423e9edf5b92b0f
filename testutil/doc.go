// Package testutil provides testing utilities for colstore.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random generator and builders for random
// product/category tables.
//
// # Random Generation
//
//	rng := testutil.NewRNG(seed)
//	name := rng.Name('a', 26, 3, 7)       // 3..7 letters
//	buckets := rng.ZipfBuckets(n, 100, 1.5) // skewed group keys
//
// # Tables
//
//	shohin, kubun, err := testutil.Tables(ctx, 4711, testutil.DefaultTableConfig())
package testutil
