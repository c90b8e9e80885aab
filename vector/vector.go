// Package vector implements a sparse typed vector: up to 64 regions of 1024
// slots each, allocated on first write, all holding one scalar type that is
// locked in by the first successful Set.
//
// A Vector is not safe for concurrent use, wrap it in Locked when shared.
package vector

import (
	"fmt"

	"github.com/dot5enko/sparse-vector/fixedpoint"
	"github.com/dot5enko/sparse-vector/region"
	"github.com/dot5enko/sparse-vector/schema"
	"github.com/google/uuid"
)

const (
	RegionSize = region.Slots
	MaxIndex   = schema.NumRegions*RegionSize - 1
)

// first float64 outside of int64 range, 2^63
const int64Limit = float64(1 << 63)

type Vector struct {
	id     uuid.UUID
	header schema.Header

	// indexed by region number, nil until the first write into its span
	regions []region.Region

	// set by the first successful write, bounds are meaningless before it
	bounded bool
}

func New() *Vector {
	uid, err := uuid.NewV7()
	if err != nil {
		uid = uuid.New()
	}

	return &Vector{
		id:     uid,
		header: schema.NewHeader(),
	}
}

func (v *Vector) Id() uuid.UUID {
	return v.id
}

// Header returns a copy, mutating it does not affect the vector
func (v *Vector) Header() schema.Header {
	return v.header
}

// Type reports the locked type, ok is false while the vector is untyped
func (v *Vector) Type() (typ schema.VectorType, ok bool) {
	if !v.header.HasType() {
		return 0, false
	}
	return v.header.Type(), true
}

func (v *Vector) Count() uint32 {
	return v.header.Count
}

// Bounds are the smallest and largest index ever written
func (v *Vector) Bounds() schema.Bounds {
	return v.header.Bounds
}

func locate(index uint) (regionIdx int, offset int, err error) {
	if index > MaxIndex {
		return 0, 0, fmt.Errorf("%w: %d, max index is %d", ErrIndexOutOfRange, index, MaxIndex)
	}
	return int(index / RegionSize), int(index % RegionSize), nil
}

func put[T region.Slot](reg region.Region, offset int, val T) {
	reg.(*region.Dense[T]).Put(offset, val)
}

// Set stores value at index. typeName is one of integer, decimal or double
// (case insensitive) and must match the type locked by the first Set.
// On error the vector is left untouched.
func (v *Vector) Set(index uint, typeName string, value float64) error {

	typ, parseErr := schema.ParseVectorType(typeName)
	if parseErr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidType, parseErr)
	}

	if v.header.HasType() && !v.header.IsType(typ) {
		return fmt.Errorf("%w: vector is %s, got %s", ErrTypeMismatch, v.header.Type().String(), typ.String())
	}

	regionIdx, offset, locateErr := locate(index)
	if locateErr != nil {
		return locateErr
	}

	// convert before anything is mutated
	var write func(reg region.Region)

	switch typ {
	case schema.IntegerVectorType:
		// rejected instead of saturating, NaN included
		if !(value < int64Limit && value >= -int64Limit) {
			return fmt.Errorf("%w: %v does not fit into integer", ErrValueOverflow, value)
		}
		intVal := int64(value)
		write = func(reg region.Region) { put(reg, offset, intVal) }
	case schema.DecimalVectorType:
		decimalVal, encodeErr := fixedpoint.Encode(value, schema.DecimalScale)
		if encodeErr != nil {
			return fmt.Errorf("%w: %w", ErrValueOverflow, encodeErr)
		}
		write = func(reg region.Region) { put(reg, offset, decimalVal) }
	case schema.DoubleVectorType:
		write = func(reg region.Region) { put(reg, offset, value) }
	}

	if !v.header.HasType() {
		v.header.SetType(typ)
	}

	write(v.ensureRegion(regionIdx))

	v.updateHeaderForSet(uint16(index))

	return nil
}

func (v *Vector) ensureRegion(regionIdx int) region.Region {
	for len(v.regions) <= regionIdx {
		v.regions = append(v.regions, nil)
	}

	if v.regions[regionIdx] == nil {
		v.regions[regionIdx] = region.New(v.header.Type())
		v.header.MarkRegion(regionIdx)
	}

	return v.regions[regionIdx]
}

// count is bumped on every write, overwrites included
func (v *Vector) updateHeaderForSet(index uint16) {
	v.header.Count += 1

	if !v.bounded {
		v.header.Bounds = schema.Bounds{First: index, Last: index}
		v.bounded = true
		return
	}

	v.header.Bounds.Morph(index)
}

func (v *Vector) regionAt(regionIdx int) region.Region {
	if regionIdx >= len(v.regions) {
		return nil
	}
	return v.regions[regionIdx]
}

func get[T region.Slot](v *Vector, index uint, typ schema.VectorType) (val T, err error) {

	regionIdx, offset, locateErr := locate(index)
	if locateErr != nil {
		return val, locateErr
	}

	if !v.header.HasType() || !v.header.IsType(typ) {
		return val, fmt.Errorf("%w: not a %s vector", ErrRegionNotInitialized, typ.String())
	}

	reg := v.regionAt(regionIdx)
	if reg == nil {
		return val, fmt.Errorf("%w: region %d", ErrRegionNotInitialized, regionIdx)
	}

	val, ok := reg.(*region.Dense[T]).Get(offset)
	if !ok {
		return val, fmt.Errorf("%w: %d", ErrNoValueAtIndex, index)
	}

	return val, nil
}

func (v *Vector) GetDecimal(index uint) (float64, error) {
	encoded, err := get[fixedpoint.Decimal](v, index, schema.DecimalVectorType)
	if err != nil {
		return 0, err
	}
	return fixedpoint.Decode(encoded, schema.DecimalScale), nil
}

func (v *Vector) GetInteger(index uint) (int64, error) {
	return get[int64](v, index, schema.IntegerVectorType)
}

func (v *Vector) GetDouble(index uint) (float64, error) {
	return get[float64](v, index, schema.DoubleVectorType)
}

// IsSet reports whether a value is present at index, whatever the type
func (v *Vector) IsSet(index uint) bool {
	regionIdx, offset, err := locate(index)
	if err != nil {
		return false
	}

	reg := v.regionAt(regionIdx)
	if reg == nil {
		return false
	}

	return reg.Presence().IsSet(offset)
}

// Clear removes the value at index. Header count and bounds never shrink,
// the region stays allocated even when it becomes empty.
func (v *Vector) Clear(index uint) error {
	regionIdx, offset, err := locate(index)
	if err != nil {
		return err
	}

	if reg := v.regionAt(regionIdx); reg != nil {
		reg.Presence().Clear(offset)
	}

	return nil
}

// Len is the number of indices currently holding a value
func (v *Vector) Len() int {
	total := 0
	for _, reg := range v.regions {
		if reg != nil {
			total += reg.Presence().Count()
		}
	}
	return total
}

// Indices lists every index holding a value, ascending
func (v *Vector) Indices() []uint16 {

	result := make([]uint16, 0, v.Len())
	cache := make([]uint16, RegionSize)

	for regionIdx, reg := range v.regions {
		if reg == nil {
			continue
		}

		filled := reg.Presence().ToIndices(cache)
		base := uint16(regionIdx * RegionSize)

		for _, offset := range cache[:filled] {
			result = append(result, base+offset)
		}
	}

	return result
}

// Regions is the number of allocated regions
func (v *Vector) Regions() int {
	allocated := 0
	for _, reg := range v.regions {
		if reg != nil {
			allocated++
		}
	}
	return allocated
}
