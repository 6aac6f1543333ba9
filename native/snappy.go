package native

import (
	"errors"

	"github.com/klauspost/compress/snappy"
)

func snappyBound(n int) (int, error) {
	bound := snappy.MaxEncodedLen(n)
	if bound < 0 {
		return 0, errors.New("snappy: input length too large to encode")
	}
	return bound, nil
}

func snappyCompress(src, dst []byte) (int, error) {
	bound, err := snappyBound(len(src))
	if err != nil {
		return 0, err
	}
	// Encode allocates a fresh slice when dst is under the bound, so the
	// capacity check happens up front and the bound doubles as the hint.
	if len(dst) < bound {
		return 0, &tooSmallError{needed: bound}
	}
	return len(snappy.Encode(dst, src)), nil
}

func snappyDecompress(src, dst []byte) (int, error) {
	// The block format prefixes the decoded length, so an undersized dst is
	// detected without running the decoder.
	n, err := snappy.DecodedLen(src)
	if err != nil {
		return 0, err
	}
	if n > len(dst) {
		return 0, &tooSmallError{needed: n}
	}
	res, err := snappy.Decode(dst, src)
	if err != nil {
		return 0, err
	}
	return len(res), nil
}
