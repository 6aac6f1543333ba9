package native

import (
	"bytes"

	"github.com/klauspost/compress/flate"
)

// flateBound is the stored-block worst case with header slack. It covers
// raw deflate and, with room to spare, the gzip wrapper around it.
func flateBound(n int) int {
	return n + n/8 + 32
}

func deflateCompress(level int32, src, dst []byte) (int, error) {
	bw := &boundedWriter{dst: dst}
	zw, err := flate.NewWriter(bw, int(level))
	if err != nil {
		return 0, err
	}
	if _, err := zw.Write(src); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return bw.result()
}

func deflateDecompress(src, dst []byte) (int, error) {
	fr := flate.NewReader(bytes.NewReader(src))
	defer fr.Close()
	return readInto(dst, fr)
}
