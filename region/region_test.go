package region

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/dot5enko/sparse-vector/bits"
	"github.com/dot5enko/sparse-vector/fixedpoint"
	"github.com/dot5enko/sparse-vector/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegionIsEmpty(t *testing.T) {

	for _, typ := range []schema.VectorType{schema.IntegerVectorType, schema.DecimalVectorType, schema.DoubleVectorType} {
		reg := New(typ)
		require.NotNil(t, reg)

		assert.Equal(t, typ, reg.Type())
		assert.False(t, reg.Presence().Count() != 0)
	}

	assert.Nil(t, New(schema.VectorType(7)))
}

func TestPutGet(t *testing.T) {

	reg := NewInteger()

	_, ok := reg.Get(10)
	assert.False(t, ok)

	reg.Put(10, -17)
	reg.Put(Slots-1, 42)

	val, ok := reg.Get(10)
	assert.True(t, ok)
	assert.Equal(t, int64(-17), val)

	val, ok = reg.Get(Slots - 1)
	assert.True(t, ok)
	assert.Equal(t, int64(42), val)

	assert.Equal(t, 2, reg.Presence().Count())

	reg.Clear(10)
	_, ok = reg.Get(10)
	assert.False(t, ok)
	assert.Equal(t, 1, reg.Presence().Count())
}

func TestCodecRoundTrip(t *testing.T) {

	ints := NewInteger()
	ints.Put(0, 42)
	ints.Put(5, -1000)

	doubles := NewDouble()
	doubles.Put(2, -2.718)

	decimals := NewDecimal()
	decimals.Put(1023, fixedpoint.MustEncode(-45.678, schema.DecimalScale))

	for _, reg := range []Region{ints, doubles, decimals} {

		bw := bits.NewEncodeBuffer(make([]byte, 64), binary.LittleEndian)
		bw.EnableGrowing()

		n, err := WriteTo(&bw, reg)
		require.NoError(t, err)
		assert.Equal(t, EncodedSize(reg.Type()), n)

		decoded, err := ReadFrom(bits.NewReader(bytes.NewReader(bw.Bytes()), binary.LittleEndian), reg.Type())
		require.NoError(t, err)

		assert.Equal(t, reg, decoded)
	}
}

func TestCodecShortInput(t *testing.T) {

	bw := bits.NewEncodeBuffer(make([]byte, EncodedSize(schema.DoubleVectorType)), binary.LittleEndian)
	_, err := WriteTo(&bw, NewDouble())
	require.NoError(t, err)

	truncated := bw.Bytes()[:bw.Position()-3]

	_, err = ReadFrom(bits.NewReader(bytes.NewReader(truncated), binary.LittleEndian), schema.DoubleVectorType)
	assert.ErrorIs(t, err, bits.ErrReadMismatch)

	_, err = ReadFrom(bits.NewReader(bytes.NewReader(nil), binary.LittleEndian), schema.VectorType(9))
	assert.ErrorIs(t, err, schema.ErrUnknownType)
}
