package bounded

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewThreeBitAcceptsFullRange(t *testing.T) {
	for v := uint64(0); v <= 7; v++ {
		i, err := New[ThreeBit](v)
		require.NoError(t, err)
		require.Equal(t, v, i.Value())
	}
}

func TestNewThreeBitRejectsOverflow(t *testing.T) {
	for v := uint64(8); v <= 255; v++ {
		_, err := New[ThreeBit](v)
		require.ErrorIs(t, err, ErrOutOfRange)

		var oor *OutOfRangeError
		require.True(t, errors.As(err, &oor))
		require.Equal(t, v, oor.Value)
		require.Equal(t, uint64(7), oor.Max)
	}
}

type nibble struct{}

func (nibble) Max() uint64 { return 15 }

func TestCustomBound(t *testing.T) {
	i, err := New[nibble](15)
	require.NoError(t, err)
	require.Equal(t, uint64(15), i.Max())

	_, err = New[nibble](16)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.EqualError(t, err, "value 16 out of range [0, 15]")
}

func TestEquality(t *testing.T) {
	a, err := New[ThreeBit](3)
	require.NoError(t, err)
	b, err := New[ThreeBit](3)
	require.NoError(t, err)
	c, err := New[ThreeBit](4)
	require.NoError(t, err)

	require.True(t, a == b)
	require.False(t, a == c)
	require.Equal(t, Int[ThreeBit]{}, mustNew(t, 0))
}

func TestMarshalText(t *testing.T) {
	text, err := mustNew(t, 5).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "5", string(text))
}

func mustNew(t *testing.T, v uint64) Int[ThreeBit] {
	t.Helper()
	i, err := New[ThreeBit](v)
	require.NoError(t, err)
	return i
}
