package bits

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

type BitWriter struct {
	pos   int
	data  []byte
	size  int
	order binary.ByteOrder

	growingEnabled bool
}

func NewEncodeBuffer(buf []byte, order binary.ByteOrder) BitWriter {

	result := BitWriter{}

	result.data = buf
	result.pos = 0
	result.size = len(buf)
	result.order = order

	return result
}

func (bw *BitWriter) EnableGrowing() {
	bw.growingEnabled = true
}

func (bw BitWriter) Position() int {
	return bw.pos
}

func (bw *BitWriter) grow(atLeast int) {

	newSize := bw.size * 2
	if bw.pos+atLeast > newSize {
		newSize = bw.pos + atLeast
	}

	newBuf := make([]byte, newSize)

	copy(newBuf, bw.data[:bw.pos])
	bw.data = newBuf
	bw.size = newSize
}

func (bw *BitWriter) tryGrow(n int) {
	if (bw.pos + n) > bw.size {
		if bw.growingEnabled {
			bw.grow(n)
		} else {
			panic(fmt.Sprintf("bit writer growing is disabled on pos : %d, try grow %d, from size : %d", bw.pos, n, bw.size))
		}
	}
}

func (bw *BitWriter) Write(p []byte) (n int, err error) {

	oldl := len(p)
	bw.tryGrow(oldl)

	n = copy(bw.data[bw.pos:], p)

	if oldl != n {
		return 0, errors.New("not enough space")
	}

	bw.pos += n

	return
}

func (bw *BitWriter) Bytes() []byte {
	return bw.data[:bw.pos]
}

func (bw *BitWriter) PutUint16(v uint16) {
	bw.tryGrow(2)
	bw.order.PutUint16(bw.data[bw.pos:], v)
	bw.pos += 2
}

func (bw *BitWriter) PutUint32(v uint32) {
	bw.tryGrow(4)
	bw.order.PutUint32(bw.data[bw.pos:], v)
	bw.pos += 4
}

func (bw *BitWriter) PutUint64(v uint64) {
	bw.tryGrow(8)
	bw.order.PutUint64(bw.data[bw.pos:], v)
	bw.pos += 8
}

func (bw *BitWriter) PutInt64(v int64) {
	bw.tryGrow(8)
	bw.order.PutUint64(bw.data[bw.pos:], uint64(v))
	bw.pos += 8
}

func (bw *BitWriter) WriteByte(u byte) error {
	bw.tryGrow(1)
	bw.data[bw.pos] = u
	bw.pos++
	return nil
}

func (bw *BitWriter) PutFloat64(f float64) {
	bw.tryGrow(8)
	bw.order.PutUint64(bw.data[bw.pos:], math.Float64bits(f))
	bw.pos += 8
}
