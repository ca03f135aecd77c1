package gocombustion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldSet(t *testing.T) {
	result, err := AnalyzeHex(context.Background(), probeHex)
	require.NoError(t, err)
	fs := result.FieldSet()

	id, err := fs.String("id")
	require.NoError(t, err)
	require.Equal(t, "10005205", id)

	probeID, err := fs.Int("probe_id")
	require.NoError(t, err)
	require.Equal(t, int64(3), probeID)

	instant, err := fs.Bool("instant_read")
	require.NoError(t, err)
	require.True(t, instant)

	_, err = fs.Int("missing")
	require.Error(t, err)

	_, err = fs.Bool("id")
	require.Error(t, err)

	_, ok := FieldSet{}.Raw("id")
	require.False(t, ok)
}
