package region

import (
	"github.com/dot5enko/sparse-vector/bits"
	"github.com/dot5enko/sparse-vector/fixedpoint"
	"github.com/dot5enko/sparse-vector/schema"
)

const Slots = bits.RegionSlots

type Slot interface {
	int64 | float64 | fixedpoint.Decimal
}

// Region is one of *Dense[int64], *Dense[fixedpoint.Decimal] or *Dense[float64].
// Type tells which one without a type switch.
type Region interface {
	Type() schema.VectorType
	Presence() *bits.Bitmap
}

type Dense[T Slot] struct {
	bitmap bits.Bitmap
	data   [Slots]T

	typ schema.VectorType
}

func NewInteger() *Dense[int64] {
	return &Dense[int64]{typ: schema.IntegerVectorType}
}

func NewDecimal() *Dense[fixedpoint.Decimal] {
	return &Dense[fixedpoint.Decimal]{typ: schema.DecimalVectorType}
}

func NewDouble() *Dense[float64] {
	return &Dense[float64]{typ: schema.DoubleVectorType}
}

// New allocates an empty region holding typ slots
func New(typ schema.VectorType) Region {
	switch typ {
	case schema.IntegerVectorType:
		return NewInteger()
	case schema.DecimalVectorType:
		return NewDecimal()
	case schema.DoubleVectorType:
		return NewDouble()
	default:
		return nil
	}
}

func (r *Dense[T]) Type() schema.VectorType {
	return r.typ
}

func (r *Dense[T]) Presence() *bits.Bitmap {
	return &r.bitmap
}

func (r *Dense[T]) Put(offset int, val T) {
	r.data[offset] = val
	r.bitmap.Set(offset)
}

// Get returns the slot and whether a value was written there
func (r *Dense[T]) Get(offset int) (val T, ok bool) {
	if !r.bitmap.IsSet(offset) {
		return val, false
	}
	return r.data[offset], true
}

// Clear drops the presence bit, slot data is left as is
func (r *Dense[T]) Clear(offset int) {
	r.bitmap.Clear(offset)
}
