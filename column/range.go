package column

import (
	"cmp"

	"github.com/hupe1980/colstore/internal/dictionary"
)

// KeyRange selects dictionary keys by an inclusive lower and an exclusive
// upper bound, each optional.
type KeyRange[K cmp.Ordered] = dictionary.KeyRange[K]

// Between selects lo <= key < hi.
func Between[K cmp.Ordered](lo, hi K) KeyRange[K] { return dictionary.Between(lo, hi) }

// From selects key >= lo.
func From[K cmp.Ordered](lo K) KeyRange[K] { return dictionary.From(lo) }

// To selects key < hi.
func To[K cmp.Ordered](hi K) KeyRange[K] { return dictionary.To(hi) }

// All selects every key.
func All[K cmp.Ordered]() KeyRange[K] { return dictionary.All[K]() }
