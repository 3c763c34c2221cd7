package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("segredo123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	ok, err := VerifyPassword(hash, "segredo123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "errada")
	require.NoError(t, err)
	assert.False(t, ok)
}
