package gocombustion

import (
	"context"

	internalopts "github.com/d21d3q/gocombustion/internal/options"
)

// AnalyzeOptions configures analysis.
type AnalyzeOptions struct {
	// Serial restricts results to one device; 8 hex digits, empty for any.
	Serial string
}

func (opts AnalyzeOptions) toInternal(ctx context.Context) (context.Context, error) {
	serial, err := internalopts.ParseSerialHex(opts.Serial)
	if err != nil {
		return ctx, err
	}
	return internalopts.WithSerialFilter(ctx, serial), nil
}
