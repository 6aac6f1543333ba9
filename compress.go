package ironpress

import "github.com/ironpress/ironpress/native"

// Boundary indirection, swapped by tests to drive the sizing protocol.
var (
	nativeCompress   = native.Compress
	nativeDecompress = native.Decompress
	nativeEstimate   = native.EstimateMaxOutputSize
)

// Compress compresses input with the given algorithm and returns a freshly
// allocated result. A negative level (UseDefaultLevel) selects the
// algorithm default; out-of-range levels are clamped, and level-less
// algorithms ignore the value.
//
// The output buffer is sized from EstimateMaxOutputSize. Should the
// boundary still report BufferTooSmall, the buffer grows once to
// max(hint, 2x previous capacity) and the call is retried; a second
// shortfall fails rather than looping.
func Compress(algo Algorithm, level int, input []byte) ([]byte, error) {
	size, err := EstimateMaxOutputSize(algo, level, len(input))
	if err != nil {
		return nil, err
	}
	for attempt := 0; attempt < 2; attempt++ {
		dst := make([]byte, size)
		n, code := nativeCompress(uint8(algo), int32(level), input, dst)
		switch code {
		case native.Success:
			return dst[:n:n], nil
		case native.BufferTooSmall:
			if attempt == 0 {
				size = max(n, 2*size)
				continue
			}
		}
		return nil, newError(code, algo, n)
	}
	panic("unreachable")
}

// Decompress restores data compressed with the given algorithm.
// expectedSize is the decompressed size recorded at compression time; it
// may be an upper bound, in which case the result is trimmed to the actual
// size. There is no retry: an expectedSize below the actual size fails
// with a BufferTooSmall error whose SizeHint is the capacity to use.
func Decompress(algo Algorithm, input []byte, expectedSize int) ([]byte, error) {
	if expectedSize < 0 {
		return nil, newError(native.InvalidArgument, algo, 0)
	}
	dst := make([]byte, expectedSize)
	n, code := nativeDecompress(uint8(algo), input, dst)
	if code != native.Success {
		return nil, newError(code, algo, n)
	}
	return dst[:n:n], nil
}

// CompressInto compresses src into a caller-owned buffer and returns the
// number of bytes written. There is no estimation and no retry; dst is
// used as is, and a shortfall surfaces as a BufferTooSmall error whose
// SizeHint sizes the next attempt.
func CompressInto(algo Algorithm, level int, src, dst []byte) (int, error) {
	n, code := nativeCompress(uint8(algo), int32(level), src, dst)
	if code != native.Success {
		return 0, newError(code, algo, n)
	}
	return n, nil
}

// DecompressInto decompresses src into a caller-owned buffer and returns
// the number of bytes written. Like CompressInto, it performs exactly one
// boundary call.
func DecompressInto(algo Algorithm, src, dst []byte) (int, error) {
	n, code := nativeDecompress(uint8(algo), src, dst)
	if code != native.Success {
		return 0, newError(code, algo, n)
	}
	return n, nil
}

// EstimateMaxOutputSize returns a worst-case compressed size for inputLen
// bytes. A buffer of the returned size always satisfies Compress for the
// same algorithm and input length. The bound is intentionally loose; for
// incompressible data it exceeds inputLen.
func EstimateMaxOutputSize(algo Algorithm, level, inputLen int) (int, error) {
	size, code := nativeEstimate(uint8(algo), int32(level), inputLen)
	if code != native.Success {
		return 0, newError(code, algo, 0)
	}
	return size, nil
}
