package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmapLayout(t *testing.T) {

	var b Bitmap

	b.Set(0)
	b.Set(9)
	b.Set(RegionSlots - 1)

	assert.Equal(t, byte(0x01), b[0])
	assert.Equal(t, byte(0x02), b[1])
	assert.Equal(t, byte(0x80), b[BitmapSizeInBytes-1])

	assert.True(t, b.IsSet(9))
	assert.False(t, b.IsSet(8))
	assert.Equal(t, 3, b.Count())

	b.SetTo(9, false)
	assert.False(t, b.IsSet(9))
	assert.Equal(t, byte(0), b[1])
}

func TestBitmapToIndices(t *testing.T) {

	var b Bitmap
	assert.Equal(t, 0, b.Count())

	expected := []uint16{3, 7, 8, 500, 1023}
	for _, it := range expected {
		b.Set(int(it))
	}

	out := make([]uint16, RegionSlots)
	filled := b.ToIndices(out)

	assert.Equal(t, expected, out[:filled])

	b.Clear(500)
	filled = b.ToIndices(out)
	assert.Equal(t, []uint16{3, 7, 8, 1023}, out[:filled])
}

func TestBitmapFull(t *testing.T) {

	var b Bitmap
	for i := 0; i < RegionSlots; i++ {
		b.Set(i)
	}

	assert.Equal(t, RegionSlots, b.Count())

	out := make([]uint16, RegionSlots)
	assert.Equal(t, RegionSlots, b.ToIndices(out))
}
