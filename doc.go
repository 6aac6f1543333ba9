/*
Package ironpress compresses and decompresses byte payloads through a fixed
registry of codecs addressed by stable one-byte identifiers.

The package is the host side of a two-layer design. The native subpackage
multiplexes nine self-contained codecs (LZ4, Snappy, Zstandard, gzip,
Brotli, LZMA2/xz, bzip2, LZF, raw deflate) behind flat entry points that
validate arguments, trap panics, and report outcomes as signed status
codes. This package drives that boundary: it sizes output buffers from the
worst-case estimator, retries once when a codec reports a shortfall, and
folds status codes into ordinary Go errors.

Identifiers and status codes are a wire contract. A payload compressed
here and tagged with its algorithm identifier stays decodable by any other
implementation of the contract, which is why identifiers are never
renumbered and placeholder algorithms still hold their slot.

# Compressing

Compress allocates and returns the compressed payload. Levels are
algorithm-specific; UseDefaultLevel picks each codec's default, and
algorithms without levels ignore the argument.

	data := []byte("Hello world! Hello world! Hello world!")
	packed, err := ironpress.Compress(ironpress.Zstd, ironpress.UseDefaultLevel, data)
	if err != nil {
		return err
	}

Decompression needs the payload size recorded at compression time, or any
upper bound on it:

	restored, err := ironpress.Decompress(ironpress.Zstd, packed, len(data))

# Caller-owned buffers

CompressInto and DecompressInto write into caller-provided buffers and
never allocate or retry. An undersized buffer fails with an *Error whose
SizeHint is the capacity to use on the next attempt:

	buf := make([]byte, 64)
	n, err := ironpress.CompressInto(ironpress.LZ4, 0, data, buf)
	var perr *ironpress.Error
	if errors.As(err, &perr) && perr.Code == ironpress.CodeBufferTooSmall {
		buf = make([]byte, perr.SizeHint)
		n, err = ironpress.CompressInto(ironpress.LZ4, 0, data, buf)
	}

IsBufferTooSmall and its sibling predicates cover the common checks
without unpacking the error.

# Reusing buffers

A Compressor keeps one growable scratch buffer across calls, for
workloads that compress many payloads in sequence:

	c := ironpress.NewCompressor(ironpress.WithInitialCapacity(64 << 10))
	for _, payload := range payloads {
		packed, err := c.Compress(ironpress.Snappy, 0, payload)
		...
	}

Results are copies, so they stay valid after further calls. A Compressor
is not safe for concurrent use; package-level functions are.
*/
package ironpress
