package ironpress

import (
	"fmt"

	"github.com/ironpress/ironpress/native"
)

// Algorithm identifies a codec in the boundary registry. The numeric
// values are wire-stable: compressed payloads tagged with an identifier
// stay decodable by any implementation of the same contract, so values
// are never renumbered or reused.
type Algorithm uint8

const (
	LZ4     Algorithm = Algorithm(native.AlgoLZ4)
	Snappy  Algorithm = Algorithm(native.AlgoSnappy)
	Zstd    Algorithm = Algorithm(native.AlgoZstd)
	Gzip    Algorithm = Algorithm(native.AlgoGzip)
	Brotli  Algorithm = Algorithm(native.AlgoBrotli)
	LZMA2   Algorithm = Algorithm(native.AlgoLZMA2)
	Bzip2   Algorithm = Algorithm(native.AlgoBzip2)
	LZF     Algorithm = Algorithm(native.AlgoLZF)
	Deflate Algorithm = Algorithm(native.AlgoDeflate)
)

// UseDefaultLevel selects the algorithm's default compression level when
// passed as the level argument.
const UseDefaultLevel = -1

// FromID maps a wire identifier back to an Algorithm. It reports false for
// identifiers not in the registry.
func FromID(id uint8) (Algorithm, bool) {
	_, ok := native.Lookup(id)
	return Algorithm(id), ok
}

// Algorithms returns every registered algorithm in identifier order,
// including placeholders that are registered but not implemented.
func Algorithms() []Algorithm {
	return []Algorithm{LZ4, Snappy, Zstd, Gzip, Brotli, LZMA2, Bzip2, LZF, Deflate}
}

// ID returns the wire identifier.
func (a Algorithm) ID() uint8 {
	return uint8(a)
}

func (a Algorithm) String() string {
	if info, ok := native.Lookup(uint8(a)); ok {
		return info.Name
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Registered reports whether the identifier is in the boundary registry.
func (a Algorithm) Registered() bool {
	_, ok := native.Lookup(uint8(a))
	return ok
}

// Implemented reports whether a functional codec backs the algorithm.
// Placeholder entries reserve their identifier but fail both transforms
// with an internal error.
func (a Algorithm) Implemented() bool {
	info, _ := native.Lookup(uint8(a))
	return info.Implemented
}

// Tunable reports whether the level argument has any effect. Level-less
// algorithms silently ignore it.
func (a Algorithm) Tunable() bool {
	info, _ := native.Lookup(uint8(a))
	return info.Tunable
}

// DefaultLevel returns the level used when the caller passes a negative
// level. It is 0 for level-less algorithms.
func (a Algorithm) DefaultLevel() int {
	info, _ := native.Lookup(uint8(a))
	return int(info.DefaultLevel)
}

// LevelRange returns the inclusive bounds levels are clamped to. Both are
// 0 for level-less algorithms.
func (a Algorithm) LevelRange() (min, max int) {
	info, _ := native.Lookup(uint8(a))
	return int(info.MinLevel), int(info.MaxLevel)
}
