package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{}

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", first)

	// salted: same plaintext, different hash
	second, err := h.Hash("secret123")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	require.NoError(t, ComparePassword(first, "secret123"))
	require.NoError(t, ComparePassword(second, "secret123"))
	require.Error(t, ComparePassword(first, "wrong-password"))
}
