package model

import "fmt"

// RowID is the physical position of a row inside a table.
// Views never renumber rows; they only choose which RowIDs are visible.
type RowID uint32

// KeyID identifies a distinct value inside a column dictionary.
// KeyIDs are dense, assigned in first-insertion order and never reused.
type KeyID uint32

// ColumnID is the position of a column inside a relation.
type ColumnID int

// Span is a half-open window [Start, End) of logical row positions.
type Span struct {
	Start int
	End   int
}

// Clip returns the span limited to [0, n).
func (s Span) Clip(n int) Span {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > n {
		s.End = n
	}
	return s
}

// Len returns the number of positions in the span, or 0 if it is empty.
func (s Span) Len() int {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// Empty reports whether the span contains no positions.
func (s Span) Empty() bool { return s.Len() == 0 }

// String returns a string representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
