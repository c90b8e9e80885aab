package vector

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"

	"github.com/dot5enko/sparse-vector/bits"
	"github.com/dot5enko/sparse-vector/compression"
	"github.com/dot5enko/sparse-vector/region"
	"github.com/dot5enko/sparse-vector/schema"
)

// vector image, all integers little endian

// *--------------------------------*
// | magic "IVEC", version			|
// | compression type				|
// | vector uuid					|
// *--------------------------------*
// | header							|
// *--------------------------------*
// | payload size, stored size		|
// *--------------------------------*
// | region index, bitmap, slots	|
// | ... one per allocated region	|
// *--------------------------------*

const (
	CurrentImageVersion = 1

	imageMagic = "IVEC"

	NoCompression  uint8 = 0
	Lz4Compression uint8 = 1

	ImagePreambleSize = 4 + 1 + 1 + 16 + schema.HeaderSize + 8 + 8

	// every region allocated, decimal slots are the widest
	maxPayloadSize = schema.NumRegions * (2 + bits.BitmapSizeInBytes + region.Slots*schema.DecimalSize)
)

type ImageConfig struct {
	Compress bool
}

// EncodeImage serializes the vector into a self contained byte image
func (v *Vector) EncodeImage(config ImageConfig) ([]byte, error) {

	payload := bits.NewEncodeBuffer(make([]byte, v.payloadSize()), binary.LittleEndian)
	payload.EnableGrowing()

	for regionIdx, reg := range v.regions {
		if reg == nil {
			continue
		}

		payload.PutUint16(uint16(regionIdx))

		if _, err := region.WriteTo(&payload, reg); err != nil {
			return nil, fmt.Errorf("unable to encode region %d: %w", regionIdx, err)
		}
	}

	stored := payload.Bytes()
	compressionType := NoCompression

	if config.Compress {
		var compressed bytes.Buffer
		if err := compression.CompressLz4(stored, &compressed); err != nil {
			return nil, fmt.Errorf("unable to compress vector image: %w", err)
		}

		stored = compressed.Bytes()
		compressionType = Lz4Compression

		log.Printf("vector %s image compressed %d -> %d bytes", v.id.String(), payload.Position(), len(stored))
	}

	bw := bits.NewEncodeBuffer(make([]byte, ImagePreambleSize+len(stored)), binary.LittleEndian)

	bw.Write([]byte(imageMagic))
	bw.WriteByte(CurrentImageVersion)
	bw.WriteByte(compressionType)
	bw.Write(v.id[:])

	if _, err := v.header.Encode(&bw); err != nil {
		return nil, fmt.Errorf("unable to encode vector header: %w", err)
	}

	bw.PutUint64(uint64(payload.Position()))
	bw.PutUint64(uint64(len(stored)))
	bw.Write(stored)

	return bw.Bytes(), nil
}

func (v *Vector) payloadSize() int {
	typ, ok := v.Type()
	if !ok {
		return 0
	}
	return v.Regions() * (2 + region.EncodedSize(typ))
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptImage, fmt.Sprintf(format, args...))
}

// DecodeImage rebuilds a vector from EncodeImage output
func DecodeImage(data []byte) (*Vector, error) {

	if len(data) < ImagePreambleSize {
		return nil, corrupt("image is %d bytes, preamble alone is %d", len(data), ImagePreambleSize)
	}

	input := bytes.NewReader(data)
	reader := bits.NewReader(input, binary.LittleEndian)

	// preamble size was checked, reads below can't come up short
	magic := make([]byte, len(imageMagic))
	reader.ReadBytes(len(magic), magic)
	if string(magic) != imageMagic {
		return nil, corrupt("bad magic %q", magic)
	}

	version := reader.MustReadU8()
	if version != CurrentImageVersion {
		return nil, corrupt("unsupported version %d, supported: %d", version, CurrentImageVersion)
	}

	compressionType := reader.MustReadU8()

	result := &Vector{}

	var uidErr error
	result.id, uidErr = reader.ReadUUID()
	if uidErr != nil {
		return nil, corrupt("unable to decode vector id: %s", uidErr.Error())
	}

	if err := result.header.FromBytes(input); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptImage, err)
	}

	payloadSize, _ := reader.ReadU64()
	storedSize, _ := reader.ReadU64()

	if storedSize != uint64(input.Len()) {
		return nil, corrupt("payload is %d bytes, header says %d", input.Len(), storedSize)
	}

	if payloadSize > maxPayloadSize {
		return nil, corrupt("payload size %d exceeds %d", payloadSize, maxPayloadSize)
	}

	stored := data[len(data)-input.Len():]

	switch compressionType {
	case NoCompression:
	case Lz4Compression:
		var decompressed bytes.Buffer
		if err := compression.DecompressLz4(stored, &decompressed, int(payloadSize)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptImage, err)
		}
		stored = decompressed.Bytes()
	default:
		return nil, corrupt("unknown compression type %d", compressionType)
	}

	if uint64(len(stored)) != payloadSize {
		return nil, corrupt("payload is %d bytes, header says %d", len(stored), payloadSize)
	}

	if err := result.decodeRegions(stored); err != nil {
		return nil, err
	}

	log.Printf("decoded vector %s image: %d regions, %d values", result.id.String(), result.Regions(), result.Len())

	return result, nil
}

func (v *Vector) decodeRegions(payload []byte) error {

	expected := 0
	for _, flag := range v.header.RegMap {
		if flag != 0 {
			expected++
		}
	}

	if !v.header.HasType() {
		if expected != 0 || len(payload) != 0 {
			return corrupt("untyped vector with %d regions", expected)
		}
		return nil
	}

	typ := v.header.Type()
	if !typ.Valid() {
		return corrupt("unknown type tag %d", uint8(typ))
	}

	regionSize := 2 + region.EncodedSize(typ)
	if len(payload) != expected*regionSize {
		return corrupt("payload of %d bytes does not hold %d %s regions", len(payload), expected, typ.String())
	}

	reader := bits.NewReader(bytes.NewReader(payload), binary.LittleEndian)

	lastIdx := -1
	for i := 0; i < expected; i++ {

		regionIdx := int(reader.MustReadU16())
		if regionIdx >= schema.NumRegions || regionIdx <= lastIdx || !v.header.HasRegion(regionIdx) {
			return corrupt("unexpected region %d", regionIdx)
		}
		lastIdx = regionIdx

		reg, err := region.ReadFrom(reader, typ)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptImage, err)
		}

		for len(v.regions) <= regionIdx {
			v.regions = append(v.regions, nil)
		}
		v.regions[regionIdx] = reg
	}

	v.bounded = expected != 0

	return nil
}
