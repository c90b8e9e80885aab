package vector

import (
	"encoding/binary"
	"testing"

	"github.com/dot5enko/sparse-vector/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVector(t *testing.T) *Vector {
	vec := New()

	require.NoError(t, vec.Set(0, "decimal", 123.4567))
	require.NoError(t, vec.Set(1, "decimal", -45.678))
	require.NoError(t, vec.Set(2, "decimal", 0.0001))
	require.NoError(t, vec.Set(5000, "decimal", 7))
	require.NoError(t, vec.Set(MaxIndex, "decimal", -1))

	return vec
}

func TestImageRoundTrip(t *testing.T) {

	for _, compress := range []bool{false, true} {

		vec := sampleVector(t)

		image, err := vec.EncodeImage(ImageConfig{Compress: compress})
		require.NoError(t, err)

		decoded, err := DecodeImage(image)
		require.NoError(t, err)

		assert.Equal(t, vec.Id(), decoded.Id())
		assert.Equal(t, vec.Header(), decoded.Header())
		assert.Equal(t, vec.Indices(), decoded.Indices())

		for _, idx := range vec.Indices() {
			expected, _ := vec.GetDecimal(uint(idx))
			got, getErr := decoded.GetDecimal(uint(idx))
			require.NoError(t, getErr)
			assert.Equal(t, expected, got)
		}

		// decoded vectors keep working
		require.NoError(t, decoded.Set(3, "decimal", 1))
		assert.Equal(t, vec.Count()+1, decoded.Count())
		assert.Equal(t, vec.Bounds(), decoded.Bounds())
		assert.ErrorIs(t, decoded.Set(4, "integer", 1), ErrTypeMismatch)
	}
}

func TestImageCompressionShrinksSparseVector(t *testing.T) {

	vec := sampleVector(t)

	raw, err := vec.EncodeImage(ImageConfig{})
	require.NoError(t, err)

	compressed, err := vec.EncodeImage(ImageConfig{Compress: true})
	require.NoError(t, err)

	assert.Equal(t, byte(NoCompression), raw[5])
	assert.Equal(t, byte(Lz4Compression), compressed[5])
	assert.Less(t, len(compressed), len(raw)/4)
}

func TestImageOfEmptyVector(t *testing.T) {

	vec := New()

	image, err := vec.EncodeImage(ImageConfig{})
	require.NoError(t, err)
	assert.Len(t, image, ImagePreambleSize)

	decoded, err := DecodeImage(image)
	require.NoError(t, err)

	_, typed := decoded.Type()
	assert.False(t, typed)

	require.NoError(t, decoded.Set(9, "integer", 4))
	assert.Equal(t, schema.Bounds{First: 9, Last: 9}, decoded.Bounds())
}

func TestImageHeaderIsEmbedded(t *testing.T) {

	vec := New()
	require.NoError(t, vec.Set(2, "integer", 1))

	image, err := vec.EncodeImage(ImageConfig{})
	require.NoError(t, err)

	headerStart := 4 + 1 + 1 + 16
	assert.Equal(t, uint16(0x8B00), binary.LittleEndian.Uint16(image[headerStart:]))
}

func TestDecodeCorruptImage(t *testing.T) {

	vec := sampleVector(t)

	image, err := vec.EncodeImage(ImageConfig{})
	require.NoError(t, err)

	mutate := func(cb func(img []byte) []byte) []byte {
		cp := append([]byte(nil), image...)
		return cb(cp)
	}

	headerStart := 4 + 1 + 1 + 16
	regmapStart := headerStart + schema.HeaderSize - schema.NumRegions*2

	cases := map[string][]byte{
		"short":       image[:10],
		"magic":       mutate(func(img []byte) []byte { img[0] = 'X'; return img }),
		"version":     mutate(func(img []byte) []byte { img[4] = 9; return img }),
		"compression": mutate(func(img []byte) []byte { img[5] = 7; return img }),
		"truncated":   image[:len(image)-1],
		"type tag":    mutate(func(img []byte) []byte { img[headerStart] = 5; return img }),
		"regmap":      mutate(func(img []byte) []byte { img[regmapStart+2] = 1; return img }),
		"untyped":     mutate(func(img []byte) []byte { img[headerStart+1] = 0; return img }),
	}

	for name, input := range cases {
		_, decodeErr := DecodeImage(input)
		assert.ErrorIs(t, decodeErr, ErrCorruptImage, name)
	}
}
