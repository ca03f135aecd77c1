package gocombustion

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the rendering of a Result.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatCBOR renders CBOR as uppercase hex so it can be printed.
	FormatCBOR Format = "cbor"
)

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML, FormatCBOR:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want json, yaml or cbor)", name)
	}
}

// Render encodes the result summary in the requested format.
func (r Result) Render(f Format) (string, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(r.summary(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal json: %w", err)
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(r.summary())
		if err != nil {
			return "", fmt.Errorf("marshal yaml: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	case FormatCBOR:
		data, err := cbor.Marshal(r.summary())
		if err != nil {
			return "", fmt.Errorf("marshal cbor: %w", err)
		}
		return strings.ToUpper(hex.EncodeToString(data)), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", f)
	}
}
