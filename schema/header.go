package schema

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dot5enko/sparse-vector/bits"
)

const (
	NumRegions = 64
	StatsSize  = 19

	// type + format + version + first + last + count + dic offset + dic length + refs + uflags + vflags + stats + regmap
	HeaderSize = 2 + 1 + 1 + 2 + 2 + 4 + 4 + 4 + 2 + 2 + 2 + StatsSize*2 + NumRegions*2
)

type Header struct {
	TypeField uint16
	Format    uint8
	Version   uint8

	Bounds Bounds
	Count  uint32

	// dictionary region, never populated
	DicOffset uint32
	DicLength uint32

	Refs   uint16
	UFlags uint16
	VFlags uint16

	// reserved for future use
	Stats [StatsSize]uint16

	RegMap [NumRegions]uint16
}

func NewHeader() Header {
	return Header{
		VFlags: 1,
	}
}

func (header *Header) HasType() bool {
	return header.TypeField&VectorMagic == VectorMagic
}

func (header *Header) Type() VectorType {
	return VectorType(header.TypeField & typeTagMask)
}

func (header *Header) IsType(typ VectorType) bool {
	return header.Type() == typ
}

func (header *Header) SetType(typ VectorType) {
	header.TypeField = VectorMagic | uint16(typ)
}

func (header *Header) HasRegion(regionIdx int) bool {
	return header.RegMap[regionIdx] != 0
}

func (header *Header) MarkRegion(regionIdx int) {
	header.RegMap[regionIdx] = 1
}

// Encode lays the header out little-endian in field order, HeaderSize bytes
func (header *Header) Encode(bw *bits.BitWriter) (int, error) {

	start := bw.Position()

	bw.PutUint16(header.TypeField)
	bw.WriteByte(header.Format)
	bw.WriteByte(header.Version)

	bw.PutUint16(header.Bounds.First)
	bw.PutUint16(header.Bounds.Last)
	bw.PutUint32(header.Count)

	bw.PutUint32(header.DicOffset)
	bw.PutUint32(header.DicLength)

	bw.PutUint16(header.Refs)
	bw.PutUint16(header.UFlags)
	bw.PutUint16(header.VFlags)

	for _, v := range header.Stats {
		bw.PutUint16(v)
	}

	for _, v := range header.RegMap {
		bw.PutUint16(v)
	}

	return bw.Position() - start, nil
}

// FromBytes decodes exactly HeaderSize bytes from input
func (header *Header) FromBytes(input io.Reader) error {

	var raw [HeaderSize]byte

	readBytes, readErr := io.ReadFull(input, raw[:])
	if readErr != nil {
		return fmt.Errorf("unable to read header, got %d of %d bytes: %w", readBytes, HeaderSize, bits.ErrReadMismatch)
	}

	// the whole record is buffered, reads below can't come up short
	reader := bits.NewReader(bytes.NewReader(raw[:]), binary.LittleEndian)

	header.TypeField = reader.MustReadU16()
	header.Format = reader.MustReadU8()
	header.Version = reader.MustReadU8()

	header.Bounds.First = reader.MustReadU16()
	header.Bounds.Last = reader.MustReadU16()
	header.Count = reader.MustReadU32()

	header.DicOffset = reader.MustReadU32()
	header.DicLength = reader.MustReadU32()

	header.Refs = reader.MustReadU16()
	header.UFlags = reader.MustReadU16()
	header.VFlags = reader.MustReadU16()

	for i := range header.Stats {
		header.Stats[i] = reader.MustReadU16()
	}

	for i := range header.RegMap {
		header.RegMap[i] = reader.MustReadU16()
	}

	return nil
}
