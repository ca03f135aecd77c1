package options

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

type contextKey struct{}

// WithSerialFilter stores the serial number filter inside the context.
func WithSerialFilter(ctx context.Context, serial string) context.Context {
	if serial == "" {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, serial)
}

// SerialFilter retrieves the serial number filter from context if present.
func SerialFilter(ctx context.Context) string {
	if v := ctx.Value(contextKey{}); v != nil {
		if serial, ok := v.(string); ok {
			return serial
		}
	}
	return ""
}

// ParseSerialHex validates an 8-hex-digit serial number and returns it in
// the uppercase form produced by the decoder.
func ParseSerialHex(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	clean := strings.ToUpper(stripWhitespace(input))
	if len(clean) != 8 {
		return "", fmt.Errorf("serial number must be 8 hex digits, got %d", len(clean))
	}
	if _, err := hex.DecodeString(clean); err != nil {
		return "", fmt.Errorf("invalid serial number hex: %w", err)
	}
	return clean, nil
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
