package native

import (
	"bytes"

	"github.com/andybalholm/brotli"
)

func brotliBound(n int) int {
	return 2*n + 64
}

func brotliCompress(level int32, src, dst []byte) (int, error) {
	bw := &boundedWriter{dst: dst}
	zw := brotli.NewWriterLevel(bw, int(level))
	if _, err := zw.Write(src); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return bw.result()
}

func brotliDecompress(src, dst []byte) (int, error) {
	return readInto(dst, brotli.NewReader(bytes.NewReader(src)))
}
