// Package dictionary implements the value dictionary that backs every column.
//
// A Dictionary interns keys into dense KeyIDs assigned in first-insertion
// order:
//
//	Exact:   key -> id       (B-tree lookup, O(log n))
//	Reverse: id  -> key      (slice index, O(1))
//	Range:   [lo, hi) -> ids (B-tree range walk, O(log n + matches))
//
// Ids are never reassigned or reused, so a column can store one small id per
// row and grouping can compare ids instead of decoded values.
package dictionary
