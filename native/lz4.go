package native

import (
	"bytes"

	"github.com/pierrec/lz4/v4"
)

// lz4Bound covers the frame format: the block bound plus frame scaffolding
// (magic, descriptor, block sizes, end mark, content checksum).
func lz4Bound(n int) int {
	return lz4.CompressBlockBound(n) + 64
}

// The frame format is used rather than raw blocks: frames store
// incompressible blocks verbatim, carry their own end marker for empty
// input, and are self-describing on the decode side.
func lz4Compress(src, dst []byte) (int, error) {
	bw := &boundedWriter{dst: dst}
	zw := lz4.NewWriter(bw)
	if _, err := zw.Write(src); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return bw.result()
}

func lz4Decompress(src, dst []byte) (int, error) {
	return readInto(dst, lz4.NewReader(bytes.NewReader(src)))
}
