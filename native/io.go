package native

import (
	"fmt"
	"io"
)

// tooSmallError reports that an output buffer could not hold a result and
// carries the minimum capacity that would have succeeded.
type tooSmallError struct {
	needed int
}

func (e *tooSmallError) Error() string {
	return fmt.Sprintf("output buffer too small, need at least %d bytes", e.needed)
}

// boundedWriter writes into a fixed destination and keeps counting once the
// destination is full, so the exact capacity a stream needed is known after
// the encoder is closed. It never returns an error; overflow is inspected
// by the caller instead.
type boundedWriter struct {
	dst      []byte
	n        int // bytes stored in dst
	overflow int // bytes that did not fit
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	n := len(p)
	if w.overflow == 0 && w.n < len(w.dst) {
		c := copy(w.dst[w.n:], p)
		w.n += c
		p = p[c:]
	}
	w.overflow += len(p)
	return n, nil
}

func (w *boundedWriter) result() (int, error) {
	if w.overflow > 0 {
		return 0, &tooSmallError{needed: w.n + w.overflow}
	}
	return w.n, nil
}

// readInto drains a decoded stream into dst. A stream larger than dst is
// drained to the end so the exact required capacity is reported. Only a
// clean io.EOF from the decoder counts as end of stream; anything else,
// including a truncated-input error, is passed through as a codec failure.
func readInto(dst []byte, r io.Reader) (int, error) {
	n := 0
	for n < len(dst) {
		m, err := r.Read(dst[n:])
		n += m
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
	}
	more, err := io.Copy(io.Discard, r)
	if err != nil {
		return 0, err
	}
	if more > 0 {
		return 0, &tooSmallError{needed: n + int(more)}
	}
	return n, nil
}
