package native

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
)

func gzipCompress(level int32, src, dst []byte) (int, error) {
	bw := &boundedWriter{dst: dst}
	zw, err := gzip.NewWriterLevel(bw, int(level))
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

func gzipDecompress(src, dst []byte) (int, error) {
	zr, err := gzip.NewReader(bytes.NewReader(src))
	if err != nil {
		return 0, err
	}
	defer zr.Close()
	return readInto(dst, zr)
}
