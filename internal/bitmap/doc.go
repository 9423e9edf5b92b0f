// Package bitmap provides the compressed id sets used by query evaluation.
//
// Two kinds of sets flow through colstore:
//
//   - admissible key ids: the dictionary ids of a column whose keys satisfy a
//     predicate. The universe is the dictionary size (NumKeys), so Len reports
//     the logical bitmap length even when most bits are clear.
//   - surviving row ids: the physical rows kept by a filter.
//
// Both are Roaring Bitmaps, so dense range results and sparse equality results
// stay small.
package bitmap
