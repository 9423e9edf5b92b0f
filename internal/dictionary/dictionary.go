package dictionary

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/google/btree"

	"github.com/hupe1980/colstore/internal/bitmap"
	"github.com/hupe1980/colstore/model"
)

// degree of the ordered index.
const degree = 32

type entry[K cmp.Ordered] struct {
	key K
	id  model.KeyID
}

// Dictionary maps keys to dense, stable KeyIDs.
//
// Invariant: index.Len() == len(keys), and keys[e.id] == e.key for every
// entry e in index.
type Dictionary[K cmp.Ordered] struct {
	index *btree.BTreeG[entry[K]]
	keys  []K
}

// New creates an empty dictionary.
func New[K cmp.Ordered]() *Dictionary[K] {
	return &Dictionary[K]{
		index: btree.NewG[entry[K]](degree, func(a, b entry[K]) bool {
			return a.key < b.key
		}),
	}
}

// NumKeys returns the number of distinct keys.
func (d *Dictionary[K]) NumKeys() int { return len(d.keys) }

// Insert interns key and returns its id. Re-inserting a known key returns the
// id it first received.
func (d *Dictionary[K]) Insert(key K) model.KeyID {
	if e, ok := d.index.Get(entry[K]{key: key}); ok {
		return e.id
	}
	id := model.KeyID(len(d.keys))
	d.index.ReplaceOrInsert(entry[K]{key: key, id: id})
	d.keys = append(d.keys, key)
	return id
}

// IDOf returns the id of key, if it was ever inserted.
func (d *Dictionary[K]) IDOf(key K) (model.KeyID, bool) {
	e, ok := d.index.Get(entry[K]{key: key})
	return e.id, ok
}

// KeyOf returns the key for id. It panics if id >= NumKeys.
func (d *Dictionary[K]) KeyOf(id model.KeyID) K {
	if int(id) >= len(d.keys) {
		panic(fmt.Sprintf("dictionary: key id %d out of range [0,%d)", id, len(d.keys)))
	}
	return d.keys[id]
}

// Range iterates the (key, id) pairs whose key lies in r, in key order.
func (d *Dictionary[K]) Range(r KeyRange[K]) iter.Seq2[K, model.KeyID] {
	return func(yield func(K, model.KeyID) bool) {
		d.ascend(r, func(e entry[K]) bool {
			return yield(e.key, e.id)
		})
	}
}

// RangeIntoBits returns a bitmap of length NumKeys with bit[id] set iff the
// key of id lies in r.
func (d *Dictionary[K]) RangeIntoBits(r KeyRange[K]) *bitmap.Bitmap {
	bits := bitmap.New(uint32(len(d.keys)))
	d.ascend(r, func(e entry[K]) bool {
		bits.Set(uint32(e.id))
		return true
	})
	return bits
}

func (d *Dictionary[K]) ascend(r KeyRange[K], fn func(entry[K]) bool) {
	if r.Empty() {
		return
	}
	lo, hi := entry[K]{key: r.lo}, entry[K]{key: r.hi}
	switch {
	case r.hasLo && r.hasHi:
		d.index.AscendRange(lo, hi, fn)
	case r.hasLo:
		d.index.AscendGreaterOrEqual(lo, fn)
	case r.hasHi:
		d.index.AscendLessThan(hi, fn)
	default:
		d.index.Ascend(fn)
	}
}
