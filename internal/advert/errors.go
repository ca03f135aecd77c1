package advert

import (
	"errors"
	"fmt"
)

var (
	ErrBufferTooShort     = errors.New("advertisement buffer too short")
	ErrInvalidProductType = errors.New("invalid product type")
	ErrInvalidColor       = errors.New("invalid color")
)

// BufferTooShortError is returned when the packet cannot reach the last
// decoded byte offset.
type BufferTooShortError struct {
	Required int
	Actual   int
}

func (e *BufferTooShortError) Error() string {
	return fmt.Sprintf("advertisement too short: need %d bytes, got %d", e.Required, e.Actual)
}

func (e *BufferTooShortError) Unwrap() error { return ErrBufferTooShort }

// FieldError reports a field whose raw value could not be decoded.
type FieldError struct {
	Field  string
	Offset int
	Raw    uint8
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s at byte %d: raw value %d: %v", e.Field, e.Offset, e.Raw, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
