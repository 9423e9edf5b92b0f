package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a fixed-universe set of uint32 ids backed by a Roaring Bitmap.
// Ids at or beyond the universe are never members.
type Bitmap struct {
	rb   *roaring.Bitmap
	size uint32
}

// New creates an empty bitmap over the universe [0, size).
func New(size uint32) *Bitmap {
	return &Bitmap{
		rb:   roaring.New(),
		size: size,
	}
}

// FromSlice creates a bitmap containing ids. The universe is max(ids)+1.
func FromSlice(ids []uint32) *Bitmap {
	b := &Bitmap{rb: roaring.BitmapOf(ids...)}
	if !b.rb.IsEmpty() {
		b.size = b.rb.Maximum() + 1
	}
	return b
}

// Len returns the size of the universe.
func (b *Bitmap) Len() uint32 { return b.size }

// Set marks id as a member. Ids outside the universe are ignored.
func (b *Bitmap) Set(id uint32) {
	if id < b.size {
		b.rb.Add(id)
	}
}

// SetRange marks [start, end) as members, clipped to the universe.
func (b *Bitmap) SetRange(start, end uint32) {
	if end > b.size {
		end = b.size
	}
	if start < end {
		b.rb.AddRange(uint64(start), uint64(end))
	}
}

// Get reports whether id is a member.
func (b *Bitmap) Get(id uint32) bool {
	return id < b.size && b.rb.Contains(id)
}

// IsEmpty returns true if the bitmap has no members.
func (b *Bitmap) IsEmpty() bool { return b.rb.IsEmpty() }

// Cardinality returns the number of members.
func (b *Bitmap) Cardinality() uint64 { return b.rb.GetCardinality() }

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{rb: b.rb.Clone(), size: b.size}
}

// And intersects b with other in place.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
	b.size = min(b.size, other.size)
}

// Or unions other into b in place.
func (b *Bitmap) Or(other *Bitmap) {
	b.rb.Or(other.rb)
	b.size = max(b.size, other.size)
}

// All iterates members in ascending order.
func (b *Bitmap) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// ToSlice returns the members in ascending order.
func (b *Bitmap) ToSlice() []uint32 { return b.rb.ToArray() }

// Bools expands the bitmap into a dense []bool of length Len.
func (b *Bitmap) Bools() []bool {
	out := make([]bool, b.size)
	for id := range b.All() {
		out[id] = true
	}
	return out
}

// SizeInBytes returns the serialized size of the bitmap.
func (b *Bitmap) SizeInBytes() uint64 { return b.rb.GetSizeInBytes() }
