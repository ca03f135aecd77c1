package bounded

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrOutOfRange is matched by every OutOfRangeError.
var ErrOutOfRange = errors.New("value out of range")

// Bound fixes the inclusive maximum of an Int at the type level.
type Bound interface {
	Max() uint64
}

// ThreeBit bounds values that fit in a 3-bit field.
type ThreeBit struct{}

// Max implements Bound.
func (ThreeBit) Max() uint64 { return 7 }

// OutOfRangeError reports a value rejected by New.
type OutOfRangeError struct {
	Value uint64
	Max   uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %d out of range [0, %d]", e.Value, e.Max)
}

// Is lets errors.Is match ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Int is an unsigned integer known to lie within [0, B.Max()].
// The zero value holds 0, which every bound admits.
type Int[B Bound] struct {
	value uint64
}

// New validates v against the bound of B.
func New[B Bound](v uint64) (Int[B], error) {
	var b B
	if v > b.Max() {
		return Int[B]{}, &OutOfRangeError{Value: v, Max: b.Max()}
	}
	return Int[B]{value: v}, nil
}

// Value returns the stored integer.
func (i Int[B]) Value() uint64 {
	return i.value
}

// Max returns the inclusive upper bound of the type.
func (Int[B]) Max() uint64 {
	var b B
	return b.Max()
}

func (i Int[B]) String() string {
	return strconv.FormatUint(i.value, 10)
}

// MarshalText renders the value in decimal.
func (i Int[B]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}
