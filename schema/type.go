package schema

import (
	"errors"
	"fmt"
	"strings"
)

// VectorType is the one-byte tag stored in the low byte of the header type field
type VectorType uint8

const (
	IntegerVectorType VectorType = iota
	DecimalVectorType
	DoubleVectorType
)

const (
	VectorMagic uint16 = 0x8B00
	typeTagMask uint16 = 0xFF

	// fixed decimal scale, 4 digits after the point
	DecimalScale = 4
	DecimalSize  = 9
)

var ErrUnknownType = errors.New("unknown vector type")

func ParseVectorType(name string) (VectorType, error) {
	switch strings.ToLower(name) {
	case "integer":
		return IntegerVectorType, nil
	case "decimal":
		return DecimalVectorType, nil
	case "double":
		return DoubleVectorType, nil
	default:
		return 0, fmt.Errorf("%w: '%s'", ErrUnknownType, name)
	}
}

func (f VectorType) String() string {
	switch f {
	case IntegerVectorType:
		return "integer"
	case DecimalVectorType:
		return "decimal"
	case DoubleVectorType:
		return "double"
	default:
		return ""
	}
}

func (f VectorType) Valid() bool {
	return f <= DoubleVectorType
}

// SlotSize is the width of one region slot in bytes
func (f VectorType) SlotSize() int {
	switch f {
	case IntegerVectorType, DoubleVectorType:
		return 8
	case DecimalVectorType:
		return DecimalSize
	default:
		panic(fmt.Sprintf("unknown vector type %d", uint8(f)))
	}
}
