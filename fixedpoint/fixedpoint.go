// Package fixedpoint encodes floats as 9-byte sign-and-magnitude fixed-point
// values: byte 0 holds the sign (1 for negative), bytes 1-8 the big-endian
// magnitude of the value scaled by 10^scale and truncated toward zero.
package fixedpoint

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

const Size = 9

type Decimal [Size]byte

var ErrOverflow = errors.New("scaled value does not fit in 64 bits")

// first float64 outside of int64 range, 2^63
const int64Limit = float64(1 << 63)

func Encode(value float64, scale uint) (result Decimal, err error) {

	scaled := value * math.Pow10(int(scale))

	// NaN fails both comparisons
	if !(scaled < int64Limit && scaled > -int64Limit) {
		return result, fmt.Errorf("%w: %v at scale %d", ErrOverflow, value, scale)
	}

	truncated := int64(scaled)

	magnitude := uint64(truncated)
	if truncated < 0 {
		result[0] = 1
		magnitude = uint64(-truncated)
	}

	binary.BigEndian.PutUint64(result[1:], magnitude)

	return result, nil
}

func MustEncode(value float64, scale uint) Decimal {
	d, err := Encode(value, scale)
	if err != nil {
		panic(err)
	}
	return d
}

func Decode(input Decimal, scale uint) float64 {

	val := float64(binary.BigEndian.Uint64(input[1:]))
	if input[0] != 0 {
		val = -val
	}

	return val / math.Pow10(int(scale))
}
