package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("secret1", "not-a-hash"))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPassword("secret1", 4)
	require.NoError(t, err)
	second, err := HashPassword("secret1", 4)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
