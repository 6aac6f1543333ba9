package native

import (
	"math"

	"github.com/klauspost/compress/zstd"
)

// Shared zstd instances, one encoder per speed tier plus one decoder, built
// at load time. EncodeAll and DecodeAll are safe for concurrent use on
// shared instances, so boundary calls never construct codec state.
var (
	zstdEncoders = map[zstd.EncoderLevel]*zstd.Encoder{}
	zstdDecoder  *zstd.Decoder
)

func init() {
	tiers := []zstd.EncoderLevel{
		zstd.SpeedFastest,
		zstd.SpeedDefault,
		zstd.SpeedBetterCompression,
		zstd.SpeedBestCompression,
	}
	for _, tier := range tiers {
		// Zero frames keep empty input round-trippable: without them
		// EncodeAll emits nothing for zero bytes.
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(tier),
			zstd.WithZeroFrames(true))
		if err != nil {
			panic("native: zstd encoder init: " + err.Error())
		}
		zstdEncoders[tier] = enc
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic("native: zstd decoder init: " + err.Error())
	}
	zstdDecoder = dec
}

func zstdBound(n int) int {
	return zstdEncoders[zstd.SpeedDefault].MaxEncodedSize(n)
}

func zstdCompress(level int32, src, dst []byte) (int, error) {
	enc := zstdEncoders[zstd.EncoderLevelFromZstd(int(level))]
	// The three-index slice caps append at the granted capacity; a larger
	// result lands in a fresh allocation that is only measured, never kept.
	res := enc.EncodeAll(src, dst[:0:len(dst)])
	if len(res) > len(dst) {
		return 0, &tooSmallError{needed: len(res)}
	}
	return len(res), nil
}

func zstdDecompress(src, dst []byte) (int, error) {
	// Frames that declare their content size are rejected up front when dst
	// cannot hold them; the declared size is the exact hint.
	var h zstd.Header
	if err := h.Decode(src); err == nil && h.HasFCS &&
		h.FrameContentSize <= math.MaxInt && int(h.FrameContentSize) > len(dst) {
		return 0, &tooSmallError{needed: int(h.FrameContentSize)}
	}
	res, err := zstdDecoder.DecodeAll(src, dst[:0:len(dst)])
	if err != nil {
		return 0, err
	}
	if len(res) > len(dst) {
		return 0, &tooSmallError{needed: len(res)}
	}
	return len(res), nil
}
