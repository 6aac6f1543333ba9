package ironpress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressor_ZeroValue(t *testing.T) {
	var c Compressor
	payload := bytes.Repeat([]byte("Hello world! "), 100)

	packed, err := c.Compress(Zstd, UseDefaultLevel, payload)
	require.NoError(t, err)

	restored, err := c.Decompress(Zstd, packed, len(payload))
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestCompressor_RoundTripAllAlgorithms(t *testing.T) {
	c := NewCompressor()
	payload := bytes.Repeat([]byte("reusable buffers "), 64)

	// One instance across all algorithms; the scratch buffer is shared.
	for _, algo := range implemented() {
		packed, err := c.Compress(algo, UseDefaultLevel, payload)
		require.NoError(t, err, "algo %s", algo)

		restored, err := c.Decompress(algo, packed, len(payload))
		require.NoError(t, err, "algo %s", algo)
		require.Equal(t, payload, restored, "algo %s", algo)
	}
}

func TestCompressor_EmptyPayload(t *testing.T) {
	var c Compressor
	packed, err := c.Compress(Gzip, UseDefaultLevel, nil)
	require.NoError(t, err)
	require.NotEmpty(t, packed)

	restored, err := c.Decompress(Gzip, packed, 0)
	require.NoError(t, err)
	require.Empty(t, restored)
}

// TestCompressor_ResultsAreStable pins the copy-out contract: results must
// not alias the scratch buffer, or the next call would corrupt them.
func TestCompressor_ResultsAreStable(t *testing.T) {
	c := NewCompressor()

	first, err := c.Compress(Snappy, 0, bytes.Repeat([]byte("aaaa"), 512))
	require.NoError(t, err)
	stash := append([]byte(nil), first...)

	_, err = c.Compress(Snappy, 0, bytes.Repeat([]byte("zzzz"), 512))
	require.NoError(t, err)

	require.Equal(t, stash, first, "first result changed after an unrelated call")
}

func TestCompressor_Growth(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	c := NewCompressor()

	small := make([]byte, 1<<10)
	big := make([]byte, 1<<20)
	rng.Read(small)
	rng.Read(big)

	_, err := c.Compress(LZ4, 0, small)
	require.NoError(t, err)
	afterSmall := len(c.buf)

	_, err = c.Compress(LZ4, 0, big)
	require.NoError(t, err)
	afterBig := len(c.buf)
	require.Greater(t, afterBig, afterSmall)

	// Shrinking workloads keep the high-water buffer; growth is one-way.
	_, err = c.Compress(LZ4, 0, small)
	require.NoError(t, err)
	require.Equal(t, afterBig, len(c.buf))
}

func TestCompressor_WithInitialCapacity(t *testing.T) {
	c := NewCompressor(WithInitialCapacity(1 << 20))
	require.Equal(t, 1<<20, len(c.buf))

	payload := make([]byte, 16<<10)
	_, err := c.Compress(Snappy, 0, payload)
	require.NoError(t, err)
	require.Equal(t, 1<<20, len(c.buf), "pre-sized buffer absorbs small payloads without growing")
}

func TestCompressor_DecompressExpectedSizeTooSmall(t *testing.T) {
	payload := bytes.Repeat([]byte("Hello world! "), 100)
	packed, err := Compress(Deflate, UseDefaultLevel, payload)
	require.NoError(t, err)

	// A fresh compressor has no high-water headroom, so the undersized
	// expectation surfaces with the exact hint.
	c := NewCompressor()
	_, err = c.Decompress(Deflate, packed, 4)
	require.True(t, IsBufferTooSmall(err))
	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, len(payload), perr.SizeHint)

	restored, err := c.Decompress(Deflate, packed, perr.SizeHint)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestCompressor_NegativeExpectedSize(t *testing.T) {
	var c Compressor
	_, err := c.Decompress(LZ4, []byte{1, 2, 3}, -7)
	require.True(t, IsInvalidArgument(err))
}

func TestCompressor_IndependentInstances(t *testing.T) {
	a := NewCompressor()
	b := NewCompressor(WithInitialCapacity(64))

	pa := bytes.Repeat([]byte("instance a "), 100)
	pb := bytes.Repeat([]byte("instance b "), 200)

	packedA, err := a.Compress(Gzip, UseDefaultLevel, pa)
	require.NoError(t, err)
	packedB, err := b.Compress(Gzip, UseDefaultLevel, pb)
	require.NoError(t, err)

	outA, err := a.Decompress(Gzip, packedA, len(pa))
	require.NoError(t, err)
	outB, err := b.Decompress(Gzip, packedB, len(pb))
	require.NoError(t, err)

	require.Equal(t, pa, outA)
	require.Equal(t, pb, outB)
}
