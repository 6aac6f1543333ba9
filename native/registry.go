package native

import "errors"

// Wire-stable algorithm identifiers. An identifier is never renumbered and
// never reused for a different algorithm, even if the codec behind it is
// retired.
const (
	AlgoLZ4     uint8 = 1
	AlgoSnappy  uint8 = 2
	AlgoZstd    uint8 = 3
	AlgoGzip    uint8 = 4
	AlgoBrotli  uint8 = 5
	AlgoLZMA2   uint8 = 6
	AlgoBzip2   uint8 = 7
	AlgoLZF     uint8 = 8
	AlgoDeflate uint8 = 9
)

var (
	errUnknownAlgo    = errors.New("unknown algorithm identifier")
	errNotImplemented = errors.New("algorithm registered but not implemented")
)

// testHookDispatch, when set, runs inside the boundary firewall before any
// codec. Tests use it to inject faults.
var testHookDispatch func(op string, algo uint8)

// AlgoInfo describes one registry entry.
type AlgoInfo struct {
	Name        string
	Implemented bool

	// Tunable is false for algorithms with a single fixed effort setting;
	// their level argument is ignored.
	Tunable      bool
	DefaultLevel int32
	MinLevel     int32
	MaxLevel     int32
}

// Lookup returns the registry entry for a wire identifier.
func Lookup(algo uint8) (AlgoInfo, bool) {
	switch algo {
	case AlgoLZ4:
		return AlgoInfo{Name: "lz4", Implemented: true}, true
	case AlgoSnappy:
		return AlgoInfo{Name: "snappy", Implemented: true}, true
	case AlgoZstd:
		return AlgoInfo{Name: "zstd", Implemented: true, Tunable: true, DefaultLevel: 3, MinLevel: 1, MaxLevel: 22}, true
	case AlgoGzip:
		return AlgoInfo{Name: "gzip", Implemented: true, Tunable: true, DefaultLevel: 6, MinLevel: 0, MaxLevel: 9}, true
	case AlgoBrotli:
		return AlgoInfo{Name: "brotli", Implemented: true, Tunable: true, DefaultLevel: 6, MinLevel: 0, MaxLevel: 11}, true
	case AlgoLZMA2:
		return AlgoInfo{Name: "lzma2", Implemented: true, Tunable: true, DefaultLevel: 6, MinLevel: 0, MaxLevel: 9}, true
	case AlgoBzip2:
		return AlgoInfo{Name: "bzip2", Implemented: true, Tunable: true, DefaultLevel: 6, MinLevel: 1, MaxLevel: 9}, true
	case AlgoLZF:
		return AlgoInfo{Name: "lzf"}, true
	case AlgoDeflate:
		return AlgoInfo{Name: "deflate", Implemented: true, Tunable: true, DefaultLevel: 6, MinLevel: 0, MaxLevel: 9}, true
	default:
		return AlgoInfo{}, false
	}
}

// clampLevel normalizes a caller-supplied level: negative selects the
// algorithm default, out-of-range clamps to the nearest bound, and
// algorithms without levels always get 0.
func clampLevel(algo uint8, level int32) int32 {
	info, ok := Lookup(algo)
	if !ok || !info.Tunable {
		return 0
	}
	if level < 0 {
		return info.DefaultLevel
	}
	return min(max(level, info.MinLevel), info.MaxLevel)
}

func dispatchCompress(algo uint8, level int32, src, dst []byte) (int, error) {
	if hook := testHookDispatch; hook != nil {
		hook("compress", algo)
	}
	level = clampLevel(algo, level)
	switch algo {
	case AlgoLZ4:
		return lz4Compress(src, dst)
	case AlgoSnappy:
		return snappyCompress(src, dst)
	case AlgoZstd:
		return zstdCompress(level, src, dst)
	case AlgoGzip:
		return gzipCompress(level, src, dst)
	case AlgoBrotli:
		return brotliCompress(level, src, dst)
	case AlgoLZMA2:
		return lzma2Compress(level, src, dst)
	case AlgoBzip2:
		return bzip2Compress(level, src, dst)
	case AlgoLZF:
		return lzfCompress(src, dst)
	case AlgoDeflate:
		return deflateCompress(level, src, dst)
	default:
		return 0, errUnknownAlgo
	}
}

func dispatchDecompress(algo uint8, src, dst []byte) (int, error) {
	if hook := testHookDispatch; hook != nil {
		hook("decompress", algo)
	}
	switch algo {
	case AlgoLZ4:
		return lz4Decompress(src, dst)
	case AlgoSnappy:
		return snappyDecompress(src, dst)
	case AlgoZstd:
		return zstdDecompress(src, dst)
	case AlgoGzip:
		return gzipDecompress(src, dst)
	case AlgoBrotli:
		return brotliDecompress(src, dst)
	case AlgoLZMA2:
		return lzma2Decompress(src, dst)
	case AlgoBzip2:
		return bzip2Decompress(src, dst)
	case AlgoLZF:
		return lzfDecompress(src, dst)
	case AlgoDeflate:
		return deflateDecompress(src, dst)
	default:
		return 0, errUnknownAlgo
	}
}

// dispatchEstimate returns the worst-case compressed size for inputLen bytes.
// Every bound must cover the codec's true worst case: a buffer sized from
// the estimate never yields BufferTooSmall from the matching compressor.
func dispatchEstimate(algo uint8, inputLen int) (int, error) {
	if hook := testHookDispatch; hook != nil {
		hook("estimate", algo)
	}
	switch algo {
	case AlgoLZ4:
		return lz4Bound(inputLen), nil
	case AlgoSnappy:
		return snappyBound(inputLen)
	case AlgoZstd:
		return zstdBound(inputLen), nil
	case AlgoGzip:
		return flateBound(inputLen), nil
	case AlgoBrotli:
		return brotliBound(inputLen), nil
	case AlgoLZMA2:
		return lzma2Bound(inputLen), nil
	case AlgoBzip2:
		return bzip2Bound(inputLen), nil
	case AlgoLZF:
		return lzfBound(inputLen), nil
	case AlgoDeflate:
		return flateBound(inputLen), nil
	default:
		return 0, errUnknownAlgo
	}
}
