package bits

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterGrowingDisabled(t *testing.T) {

	bw := NewEncodeBuffer(make([]byte, 2), binary.LittleEndian)
	bw.PutUint16(1)

	assert.Panics(t, func() { bw.PutUint16(2) })
	assert.Equal(t, []byte{1, 0}, bw.Bytes())
}

func TestWriterGrowsPastInitialBuffer(t *testing.T) {

	bw := NewEncodeBuffer(make([]byte, 1), binary.LittleEndian)
	bw.EnableGrowing()

	bw.PutUint64(0x0102030405060708)
	bw.WriteByte(9)

	assert.Equal(t, 9, bw.Position())
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1, 9}, bw.Bytes())
}
