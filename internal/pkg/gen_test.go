package pkg

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoEntropy = errors.New("no entropy")

func TestGenerateAcceptKey(t *testing.T) {
	// Given: the sample key from RFC 6455 section 1.3
	key := "dGhlIHNhbXBsZSBub25jZQ=="

	// Then: the accept key matches the RFC
	assert.Equal(t, "s3pPLMBiTxaQ9kYGzzhZRbK+xOo=", GenerateAcceptKey(key))
}

func TestGenerateGameID(t *testing.T) {
	first, err := GenerateGameID()
	require.NoError(t, err)

	second, err := GenerateGameID()
	require.NoError(t, err)

	_, err = uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestGenerateNewSessionID(t *testing.T) {
	first, err := GenerateNewSessionID()
	require.NoError(t, err)

	second, err := GenerateNewSessionID()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, first, 43)
}

func TestGenerateNewSessionID_RandomFailure(t *testing.T) {
	// Given: a random source that always fails
	original := readRandom
	t.Cleanup(func() { readRandom = original })

	readRandom = func([]byte) (int, error) { return 0, errNoEntropy }

	// When: generating an id
	id, err := GenerateNewSessionID()

	// Then: the failure is returned instead of a shared placeholder id
	require.ErrorIs(t, err, errNoEntropy)
	assert.Empty(t, id)
}
