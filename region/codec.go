package region

import (
	"fmt"

	"github.com/dot5enko/sparse-vector/bits"
	"github.com/dot5enko/sparse-vector/fixedpoint"
	"github.com/dot5enko/sparse-vector/schema"
)

// EncodedSize is bitmap + every slot, present or not
func EncodedSize(typ schema.VectorType) int {
	return bits.BitmapSizeInBytes + Slots*typ.SlotSize()
}

func WriteTo(bw *bits.BitWriter, reg Region) (int, error) {

	start := bw.Position()

	bw.Write(reg.Presence()[:])

	switch r := reg.(type) {
	case *Dense[int64]:
		for _, v := range r.data {
			bw.PutInt64(v)
		}
	case *Dense[float64]:
		for _, v := range r.data {
			bw.PutFloat64(v)
		}
	case *Dense[fixedpoint.Decimal]:
		for _, v := range r.data {
			bw.Write(v[:])
		}
	default:
		return 0, fmt.Errorf("unsupported region %T", reg)
	}

	return bw.Position() - start, nil
}

func ReadFrom(reader *bits.BitsReader, typ schema.VectorType) (Region, error) {

	reg := New(typ)
	if reg == nil {
		return nil, fmt.Errorf("%w: tag %d", schema.ErrUnknownType, uint8(typ))
	}

	readErr := reader.ReadBytes(bits.BitmapSizeInBytes, reg.Presence()[:])
	if readErr != nil {
		return nil, fmt.Errorf("unable to decode region bitmap: %w", readErr)
	}

	switch r := reg.(type) {
	case *Dense[int64]:
		for i := range r.data {
			if r.data[i], readErr = reader.ReadI64(); readErr != nil {
				break
			}
		}
	case *Dense[float64]:
		for i := range r.data {
			if r.data[i], readErr = reader.ReadF64(); readErr != nil {
				break
			}
		}
	case *Dense[fixedpoint.Decimal]:
		for i := range r.data {
			if readErr = reader.ReadBytes(fixedpoint.Size, r.data[i][:]); readErr != nil {
				break
			}
		}
	}

	if readErr != nil {
		return nil, fmt.Errorf("unable to decode %s region slots: %w", typ.String(), readErr)
	}

	return reg, nil
}
