package native

import (
	"bytes"

	"github.com/ulikunitz/xz"
)

// Dictionary capacity per level, following the xz preset ladder.
var lzma2DictCap = [10]int{
	256 << 10, // 0
	1 << 20,   // 1
	2 << 20,   // 2
	4 << 20,   // 3
	4 << 20,   // 4
	8 << 20,   // 5
	8 << 20,   // 6
	16 << 20,  // 7
	32 << 20,  // 8
	64 << 20,  // 9
}

// lzma2Bound leaves generous slack for the xz container, whose headers and
// index dominate on tiny inputs.
func lzma2Bound(n int) int {
	return 2*n + 256
}

func lzma2Compress(level int32, src, dst []byte) (int, error) {
	// The writer allocates the whole dictionary up front, so it is shrunk
	// to the payload for small inputs. The reader sizes itself from the
	// stream, so this never affects decompression.
	dictCap := lzma2DictCap[level]
	if len(src) < dictCap {
		dictCap = max(len(src), 4096)
	}
	bw := &boundedWriter{dst: dst}
	cfg := xz.WriterConfig{DictCap: dictCap}
	zw, err := cfg.NewWriter(bw)
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

func lzma2Decompress(src, dst []byte) (int, error) {
	zr, err := xz.NewReader(bytes.NewReader(src))
	if err != nil {
		return 0, err
	}
	return readInto(dst, zr)
}
