package native

import (
	"bytes"

	"github.com/dsnet/compress/bzip2"
)

// bzip2Bound leaves generous slack for the block header and footer, which
// dominate on tiny inputs.
func bzip2Bound(n int) int {
	return 2*n + 256
}

func bzip2Compress(level int32, src, dst []byte) (int, error) {
	bw := &boundedWriter{dst: dst}
	zw, err := bzip2.NewWriter(bw, &bzip2.WriterConfig{Level: int(level)})
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

func bzip2Decompress(src, dst []byte) (int, error) {
	zr, err := bzip2.NewReader(bytes.NewReader(src), nil)
	if err != nil {
		return 0, err
	}
	defer zr.Close()
	return readInto(dst, zr)
}
