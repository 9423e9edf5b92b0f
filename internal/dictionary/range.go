package dictionary

import "cmp"

// KeyRange selects keys by an optional inclusive lower bound and an optional
// exclusive upper bound. The zero KeyRange selects every key.
type KeyRange[K cmp.Ordered] struct {
	lo, hi       K
	hasLo, hasHi bool
}

// All selects every key.
func All[K cmp.Ordered]() KeyRange[K] { return KeyRange[K]{} }

// Between selects lo <= key < hi.
func Between[K cmp.Ordered](lo, hi K) KeyRange[K] {
	return KeyRange[K]{lo: lo, hi: hi, hasLo: true, hasHi: true}
}

// From selects key >= lo.
func From[K cmp.Ordered](lo K) KeyRange[K] {
	return KeyRange[K]{lo: lo, hasLo: true}
}

// To selects key < hi.
func To[K cmp.Ordered](hi K) KeyRange[K] {
	return KeyRange[K]{hi: hi, hasHi: true}
}

// Contains reports whether key lies in the range.
func (r KeyRange[K]) Contains(key K) bool {
	if r.hasLo && key < r.lo {
		return false
	}
	if r.hasHi && key >= r.hi {
		return false
	}
	return true
}

// Empty reports whether no key can lie in the range.
func (r KeyRange[K]) Empty() bool {
	return r.hasLo && r.hasHi && r.lo >= r.hi
}
