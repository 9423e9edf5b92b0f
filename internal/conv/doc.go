// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow
// when converting between Go's platform-dependent int and the fixed-width
// types used for values and row ids.
//
// Use cases:
//   - Converting caller-supplied Go integers into 32-bit Integer values
//   - Decoding JSON numbers, which arrive as float64
//   - Checking that a row count still fits a RowID
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
