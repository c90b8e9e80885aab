package bits

import "math/bits"

const (
	RegionSlots       = 1024
	BitmapSizeInBytes = RegionSlots / 8
)

// Bitmap tracks slot presence inside a region, one bit per slot.
// bit n lives in byte n/8 at position n%8
type Bitmap [BitmapSizeInBytes]byte

func (b *Bitmap) SetTo(offset int, present bool) {
	byteIdx := offset >> 3
	mask := byte(1) << (offset & 7)
	if present {
		b[byteIdx] |= mask // set
	} else {
		b[byteIdx] &^= mask // clear
	}
}

func (b *Bitmap) Set(offset int) {
	b.SetTo(offset, true)
}

func (b *Bitmap) Clear(offset int) {
	b.SetTo(offset, false)
}

func (b *Bitmap) IsSet(offset int) bool {
	return b[offset>>3]&(1<<(offset&7)) != 0
}

func (b *Bitmap) ToIndices(out []uint16) int {
	filled := 0
	for bi, v := range b {
		for v != 0 {
			tz := bits.TrailingZeros8(v)
			out[filled] = uint16(bi*8 + tz)
			filled += 1
			v &= v - 1 // clear lowest set bit
		}
	}
	return filled
}

func (b *Bitmap) Count() int {
	c := 0
	for i := 0; i < BitmapSizeInBytes; i += 4 {
		c += bits.OnesCount8(b[i+0])
		c += bits.OnesCount8(b[i+1])
		c += bits.OnesCount8(b[i+2])
		c += bits.OnesCount8(b[i+3])
	}
	return c
}
