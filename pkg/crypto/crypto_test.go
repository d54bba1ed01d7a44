package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestS256Challenge(t *testing.T) {
	// Appendix B of RFC 7636.
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	require.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", S256Challenge(verifier))
}

func TestGenerateRandomString(t *testing.T) {
	a, err := GenerateRandomString()
	require.NoError(t, err)
	b, err := GenerateRandomString()
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.Len(t, a, 43)
}

func TestConstantTimeEqual(t *testing.T) {
	require.True(t, ConstantTimeEqual("state", "state"))
	require.False(t, ConstantTimeEqual("state", "state2"))
	require.False(t, ConstantTimeEqual("state", ""))
}

func TestGenerateRandomAlphabet(t *testing.T) {
	s := GenerateRandomAlphabet(8)
	require.Len(t, s, 8)
	for _, c := range s {
		require.Contains(t, alphabet, string(c))
	}
}
