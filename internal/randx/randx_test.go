package randx

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexString_LengthAndCharset(t *testing.T) {
	s, err := HexString(16)
	require.NoError(t, err)
	require.Len(t, s, 32)

	_, err = hex.DecodeString(s)
	require.NoError(t, err)
}

func TestHexString_Distinct(t *testing.T) {
	a, err := HexString(16)
	require.NoError(t, err)
	b, err := HexString(16)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestHexString_ZeroSize(t *testing.T) {
	s, err := HexString(0)
	require.NoError(t, err)
	require.Empty(t, s)
}
