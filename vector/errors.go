package vector

import "errors"

var (
	ErrInvalidType          = errors.New("invalid vector type specified")
	ErrTypeMismatch         = errors.New("cannot change vector type after initialization")
	ErrRegionNotInitialized = errors.New("region not initialized")
	ErrNoValueAtIndex       = errors.New("no value set at this index")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrValueOverflow        = errors.New("value out of range for vector type")
	ErrCorruptImage         = errors.New("corrupt vector image")
)
