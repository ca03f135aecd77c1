package advert

import "github.com/d21d3q/gocombustion/internal/bounded"

// ProductType identifies the kind of device that sent the advertisement.
type ProductType uint8

const (
	ProductUnknown         ProductType = 0
	ProductPredictiveProbe ProductType = 1
	// ProductKitchenTimer is also reported by repeaters.
	ProductKitchenTimer ProductType = 2
)

func (p ProductType) String() string {
	switch p {
	case ProductUnknown:
		return "unknown"
	case ProductPredictiveProbe:
		return "predictive probe"
	case ProductKitchenTimer:
		return "kitchen timer"
	default:
		return "invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p ProductType) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// ProbeMode is the operating mode reported in the low two bits of byte 18.
type ProbeMode uint8

const (
	ModeNormal      ProbeMode = 0
	ModeInstantRead ProbeMode = 1
	ModeReserved    ProbeMode = 2
	ModeError       ProbeMode = 3
)

func (m ProbeMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInstantRead:
		return "instant read"
	case ModeReserved:
		return "reserved"
	case ModeError:
		return "error"
	default:
		return "invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ProbeMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Color is the probe housing color. Values 2-7 are unassigned.
type Color uint8

const (
	ColorYellow Color = 0
	ColorGrey   Color = 1
)

func (c Color) String() string {
	switch c {
	case ColorYellow:
		return "yellow"
	case ColorGrey:
		return "grey"
	default:
		return "invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// ProbeID is the 3-bit probe identifier.
type ProbeID = bounded.Int[bounded.ThreeBit]

// ProbeAdvertisement is the decoded content of one advertisement packet.
type ProbeAdvertisement struct {
	ProductType  ProductType `json:"product_type" yaml:"product_type" cbor:"product_type"`
	SerialNumber string      `json:"serial_number" yaml:"serial_number" cbor:"serial_number"`
	Mode         ProbeMode   `json:"mode" yaml:"mode" cbor:"mode"`
	Color        Color       `json:"color" yaml:"color" cbor:"color"`
	ID           ProbeID     `json:"id" yaml:"id" cbor:"id"`
}
