package advert

import (
	"fmt"

	"github.com/d21d3q/gocombustion/internal/bounded"
)

const (
	offsetProductType = 0
	offsetSerial      = 1
	serialLen         = 4
	offsetModeColorID = 18

	// MinPacketLen is the shortest buffer that reaches every decoded offset.
	MinPacketLen = offsetModeColorID + 1
)

// Decode parses a raw advertisement packet. Bytes outside the decoded
// offsets are ignored. On error the zero ProbeAdvertisement is returned.
func Decode(packet []byte) (ProbeAdvertisement, error) {
	if len(packet) < MinPacketLen {
		return ProbeAdvertisement{}, &BufferTooShortError{Required: MinPacketLen, Actual: len(packet)}
	}
	product, err := decodeProductType(packet[offsetProductType])
	if err != nil {
		return ProbeAdvertisement{}, err
	}

	b := packet[offsetModeColorID]
	mode := ProbeMode(bits(b, 0, 2))
	color, err := decodeColor(bits(b, 2, 3))
	if err != nil {
		return ProbeAdvertisement{}, err
	}
	rawID := bits(b, 5, 3)
	id, err := bounded.New[bounded.ThreeBit](uint64(rawID))
	if err != nil {
		return ProbeAdvertisement{}, &FieldError{Field: "id", Offset: offsetModeColorID, Raw: rawID, Err: err}
	}

	return ProbeAdvertisement{
		ProductType:  product,
		SerialNumber: serialString(packet[offsetSerial : offsetSerial+serialLen]),
		Mode:         mode,
		Color:        color,
		ID:           id,
	}, nil
}

func decodeProductType(raw byte) (ProductType, error) {
	switch p := ProductType(raw); p {
	case ProductUnknown, ProductPredictiveProbe, ProductKitchenTimer:
		return p, nil
	default:
		return 0, &FieldError{Field: "product_type", Offset: offsetProductType, Raw: raw, Err: ErrInvalidProductType}
	}
}

func decodeColor(raw byte) (Color, error) {
	switch c := Color(raw); c {
	case ColorYellow, ColorGrey:
		return c, nil
	default:
		return 0, &FieldError{Field: "color", Offset: offsetModeColorID, Raw: raw, Err: ErrInvalidColor}
	}
}

// serialString renders the little-endian serial MSB first.
func serialString(b []byte) string {
	return fmt.Sprintf("%02X%02X%02X%02X", b[3], b[2], b[1], b[0])
}

// bits extracts width bits of b starting at bit shift (LSB = 0).
func bits(b byte, shift, width uint) byte {
	return (b >> shift) & (1<<width - 1)
}
