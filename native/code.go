package native

import "fmt"

// Code is the status returned by every boundary call. The numeric values
// are part of the wire contract shared with non-Go callers and are never
// renumbered or reused.
type Code int32

const (
	// Success means the operation completed and the first return value is
	// the number of bytes written.
	Success Code = 0

	// BufferTooSmall means the output buffer cannot hold the result. The
	// first return value is the minimum capacity that would have succeeded.
	BufferTooSmall Code = -1

	// AlgoNotFound means the algorithm identifier is not in the registry.
	AlgoNotFound Code = -2

	// InvalidArgument means a buffer or length argument was unusable before
	// any codec ran.
	InvalidArgument Code = -3

	// Internal means the codec itself failed: corrupt input, an unexpected
	// library error, or a registered placeholder with no implementation.
	Internal Code = -50

	// PanicCaught means a panic escaped a codec and was stopped at the
	// boundary instead of unwinding into the caller.
	PanicCaught Code = -99
)

func (c Code) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case BufferTooSmall:
		return "BUFFER_TOO_SMALL"
	case AlgoNotFound:
		return "ALGO_NOT_FOUND"
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case Internal:
		return "INTERNAL_ERROR"
	case PanicCaught:
		return "PANIC_CAUGHT"
	default:
		return fmt.Sprintf("Code(%d)", int32(c))
	}
}
