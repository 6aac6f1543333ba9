package ironpress

import (
	"errors"
	"fmt"

	"github.com/ironpress/ironpress/native"
)

// Code is the boundary status code attached to failures.
type Code = native.Code

// Boundary status codes, re-exported for matching on (*Error).Code.
const (
	CodeBufferTooSmall  = native.BufferTooSmall
	CodeAlgoNotFound    = native.AlgoNotFound
	CodeInvalidArgument = native.InvalidArgument
	CodeInternal        = native.Internal
	CodePanicCaught     = native.PanicCaught
)

// Error is a failed boundary call: the status code, the algorithm
// involved, and the capacity hint when the code carries one.
type Error struct {
	Code      Code
	Algorithm Algorithm

	// SizeHint is the minimum output capacity that would have let the call
	// succeed. It is -1 unless Code is BufferTooSmall.
	SizeHint int
}

func (e *Error) Error() string {
	if e.SizeHint >= 0 {
		return fmt.Sprintf("%s [%s] (needed %d bytes)", e.Code, e.Algorithm, e.SizeHint)
	}
	return fmt.Sprintf("%s [%s]", e.Code, e.Algorithm)
}

// newError normalizes a boundary result into an Error. The count returned
// alongside a code is only meaningful as a hint for BufferTooSmall.
func newError(code Code, algo Algorithm, n int) *Error {
	hint := -1
	if code == native.BufferTooSmall {
		hint = n
	}
	return &Error{Code: code, Algorithm: algo, SizeHint: hint}
}

func codeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return native.Success
}

// IsBufferTooSmall reports whether err is a boundary error carrying a
// capacity hint. The hint is available as (*Error).SizeHint via errors.As.
func IsBufferTooSmall(err error) bool {
	return codeOf(err) == native.BufferTooSmall
}

// IsAlgoNotFound reports whether err names an algorithm outside the
// registry.
func IsAlgoNotFound(err error) bool {
	return codeOf(err) == native.AlgoNotFound
}

// IsInvalidArgument reports whether err was rejected before any codec ran.
func IsInvalidArgument(err error) bool {
	return codeOf(err) == native.InvalidArgument
}

// IsInternal reports whether a codec itself failed: corrupt input, a
// library fault, or a placeholder algorithm with no implementation. The
// cases are deliberately not distinguished.
func IsInternal(err error) bool {
	return codeOf(err) == native.Internal
}

// IsPanicCaught reports whether a codec panic was trapped at the boundary.
func IsPanicCaught(err error) bool {
	return codeOf(err) == native.PanicCaught
}
