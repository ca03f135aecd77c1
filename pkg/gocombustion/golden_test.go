package gocombustion

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d21d3q/gocombustion/internal/testutil"
)

func TestAdvertisementGolden(t *testing.T) {
	fixtures := []struct {
		name      string
		driver    string
		expectErr error
	}{
		{name: "probe_instant_read", driver: "probe"},
		{name: "timer_yellow", driver: "timer"},
		{name: "unknown_product", driver: "unknown"},
		{name: "invalid_color", expectErr: ErrInvalidColor},
		{name: "invalid_product", expectErr: ErrInvalidProductType},
		{name: "short", expectErr: ErrBufferTooShort},
	}
	for _, tc := range fixtures {
		t.Run(tc.name, func(t *testing.T) {
			hexStr := testutil.LoadHex(t, "advert/"+tc.name+".hex")
			result, err := AnalyzeHex(context.Background(), hexStr)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.driver, result.Driver)

			packet := testutil.LoadPacket(t, "advert/"+tc.name+".hex")
			fromBytes, err := AnalyzePacket(context.Background(), packet, AnalyzeOptions{})
			require.NoError(t, err)
			require.Equal(t, result, fromBytes)

			var expected map[string]any
			testutil.LoadJSON(t, "advert/"+tc.name+".json", &expected)
			require.Equal(t, "", diffMaps(expected, result.Fields))
		})
	}
}

func diffMaps(expected, actual map[string]any) string {
	if len(expected) != len(actual) {
		return fmt.Sprintf("len mismatch expected %d actual %d", len(expected), len(actual))
	}
	for k, v := range expected {
		av, ok := actual[k]
		if !ok {
			return fmt.Sprintf("missing key %s", k)
		}
		if fmt.Sprint(v) != fmt.Sprint(av) {
			return fmt.Sprintf("key %s mismatch expected %v got %v", k, v, av)
		}
	}
	return ""
}
