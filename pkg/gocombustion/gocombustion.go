package gocombustion

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/d21d3q/gocombustion/internal/advert"
	"github.com/d21d3q/gocombustion/internal/bounded"
	"github.com/d21d3q/gocombustion/internal/driver"
	_ "github.com/d21d3q/gocombustion/internal/driver/probe" // register driver
	_ "github.com/d21d3q/gocombustion/internal/driver/timer" // register driver
	"github.com/d21d3q/gocombustion/internal/options"
)

type (
	ProbeAdvertisement  = advert.ProbeAdvertisement
	ProductType         = advert.ProductType
	ProbeMode           = advert.ProbeMode
	Color               = advert.Color
	ProbeID             = advert.ProbeID
	FieldError          = advert.FieldError
	BufferTooShortError = advert.BufferTooShortError
	OutOfRangeError     = bounded.OutOfRangeError
)

const (
	ProductUnknown         = advert.ProductUnknown
	ProductPredictiveProbe = advert.ProductPredictiveProbe
	ProductKitchenTimer    = advert.ProductKitchenTimer

	ModeNormal      = advert.ModeNormal
	ModeInstantRead = advert.ModeInstantRead
	ModeReserved    = advert.ModeReserved
	ModeError       = advert.ModeError

	ColorYellow = advert.ColorYellow
	ColorGrey   = advert.ColorGrey

	MinPacketLen = advert.MinPacketLen
)

var (
	ErrBufferTooShort     = advert.ErrBufferTooShort
	ErrInvalidProductType = advert.ErrInvalidProductType
	ErrInvalidColor       = advert.ErrInvalidColor
	ErrOutOfRange         = bounded.ErrOutOfRange
	ErrSerialMismatch     = errors.New("advertisement serial does not match filter")
)

// Decode parses one raw advertisement packet.
func Decode(packet []byte) (ProbeAdvertisement, error) {
	return advert.Decode(packet)
}

// NewProbeID validates a probe identifier.
func NewProbeID(v uint64) (ProbeID, error) {
	return bounded.New[bounded.ThreeBit](v)
}

// Result captures the outcome of AnalyzeHex.
type Result struct {
	Driver        string
	RawHex        string
	ByteCount     int
	Advertisement *ProbeAdvertisement
	Fields        map[string]any
}

func (r Result) summary() map[string]any {
	summary := map[string]any{
		"driver":     r.Driver,
		"byte_count": r.ByteCount,
		"raw_hex":    r.RawHex,
	}
	if r.Advertisement != nil {
		summary["advertisement"] = map[string]any{
			"product_type":  r.Advertisement.ProductType.String(),
			"serial_number": r.Advertisement.SerialNumber,
			"mode":          r.Advertisement.Mode.String(),
			"color":         r.Advertisement.Color.String(),
			"id":            r.Advertisement.ID.Value(),
		}
	}
	if len(r.Fields) > 0 {
		summary["fields"] = r.Fields
	}
	return summary
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	data, err := json.MarshalIndent(r.summary(), "", "  ")
	if err != nil {
		return fmt.Sprintf("driver: %s bytes:%d raw:%s (marshal error: %v)", r.Driver, r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// AnalyzeHex decodes a hex encoded packet and selects a product driver.
func AnalyzeHex(ctx context.Context, raw string) (Result, error) {
	return AnalyzeHexWithOptions(ctx, raw, AnalyzeOptions{})
}

// AnalyzeHexWithOptions decodes the packet with custom options.
func AnalyzeHexWithOptions(ctx context.Context, raw string, opts AnalyzeOptions) (Result, error) {
	ctx, err := opts.toInternal(ctx)
	if err != nil {
		return Result{}, err
	}
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	return analyze(ctx, data, strings.ToUpper(stripWhitespace(raw)))
}

// AnalyzePacket runs the same pipeline as AnalyzeHex on raw packet bytes.
func AnalyzePacket(ctx context.Context, packet []byte, opts AnalyzeOptions) (Result, error) {
	ctx, err := opts.toInternal(ctx)
	if err != nil {
		return Result{}, err
	}
	return analyze(ctx, packet, strings.ToUpper(hex.EncodeToString(packet)))
}

func analyze(ctx context.Context, data []byte, rawHex string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	adv, err := advert.Decode(data)
	if err != nil {
		return Result{}, err
	}
	if want := options.SerialFilter(ctx); want != "" && want != adv.SerialNumber {
		return Result{}, fmt.Errorf("%w: got %s, want %s", ErrSerialMismatch, adv.SerialNumber, want)
	}

	result := Result{
		Driver:        "unknown",
		RawHex:        rawHex,
		ByteCount:     len(data),
		Advertisement: &adv,
	}

	drv, err := driver.Lookup(driver.Detection{ProductType: adv.ProductType})
	if err != nil {
		result.Fields = driver.CommonFields(&adv)
		return result, nil
	}
	fields, err := drv.Process(ctx, &adv)
	if err != nil {
		return result, err
	}
	result.Driver = drv.Name()
	result.Fields = fields
	return result, nil
}

func decodeHex(input string) ([]byte, error) {
	clean := stripWhitespace(input)
	if strings.HasPrefix(clean, "0X") || strings.HasPrefix(clean, "0x") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex packet must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripWhitespace(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
