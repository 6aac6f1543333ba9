package ironpress

import "github.com/ironpress/ironpress/native"

// Compressor reuses one growable output buffer across calls, so steady
// workloads stop allocating estimate-sized scratch space per payload.
// Results are copied out of the buffer and never alias it.
//
// The zero value is ready to use. A Compressor is not safe for concurrent
// use: give each goroutine its own, or serialize access externally.
// Instances are independent and need no teardown.
type Compressor struct {
	buf []byte
}

// NewCompressor returns a Compressor configured by opts.
func NewCompressor(opts ...Option) *Compressor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	c := &Compressor{}
	if cfg.InitialCapacity > 0 {
		c.buf = make([]byte, cfg.InitialCapacity)
	}
	return c
}

// grow swaps in a buffer of at least n bytes, doubling so repeated small
// bumps settle quickly. The old buffer is replaced, never resliced, so any
// result copied out earlier is untouched by later calls. The buffer is
// non-nil afterwards even for n=0; the boundary treats nil output buffers
// as invalid.
func (c *Compressor) grow(n int) {
	if c.buf == nil || len(c.buf) < n {
		c.buf = make([]byte, max(n, 2*len(c.buf)))
	}
}

// Compress compresses input using the reusable buffer and returns a copy
// of the result. Sizing follows the same protocol as the package-level
// Compress: estimate first, then at most one grow-and-retry on a
// BufferTooSmall report.
func (c *Compressor) Compress(algo Algorithm, level int, input []byte) ([]byte, error) {
	size, err := EstimateMaxOutputSize(algo, level, len(input))
	if err != nil {
		return nil, err
	}
	c.grow(size)
	for attempt := 0; attempt < 2; attempt++ {
		n, code := nativeCompress(uint8(algo), int32(level), input, c.buf)
		switch code {
		case native.Success:
			out := make([]byte, n)
			copy(out, c.buf)
			return out, nil
		case native.BufferTooSmall:
			if attempt == 0 {
				c.grow(n)
				continue
			}
		}
		return nil, newError(code, algo, n)
	}
	panic("unreachable")
}

// Decompress restores data using the reusable buffer and returns a copy of
// the result. expectedSize sizes the buffer exactly as in the package-level
// Decompress; a buffer retained from earlier calls may exceed it, which
// only widens the headroom.
func (c *Compressor) Decompress(algo Algorithm, input []byte, expectedSize int) ([]byte, error) {
	if expectedSize < 0 {
		return nil, newError(native.InvalidArgument, algo, 0)
	}
	c.grow(expectedSize)
	n, code := nativeDecompress(uint8(algo), input, c.buf)
	if code != native.Success {
		return nil, newError(code, algo, n)
	}
	out := make([]byte, n)
	copy(out, c.buf)
	return out, nil
}
