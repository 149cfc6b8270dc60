package tracker

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdCompressor_RoundTrip(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)

	original := []byte(`{"version":2,"entries":{"2026-01-03":{"text":"hello","mood":"Happy"}}}`)
	compressed, err := c.Compress(original)
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestZstdCompressor_ShrinksRepetitiveData(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)

	data := bytes.Repeat([]byte("mood journal entry "), 1000)
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(data))
}

func TestZstdCompressor_RejectsGarbage(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)

	_, err = c.Decompress([]byte("definitely not zstd"))
	assert.Error(t, err)
}

func TestZstdCompressor_EmptyInput(t *testing.T) {
	c, err := NewZstdCompressor()
	require.NoError(t, err)

	compressed, err := c.Compress([]byte{})
	require.NoError(t, err)

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Empty(t, decompressed)
}
