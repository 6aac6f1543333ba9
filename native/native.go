// Package native is the codec dispatch boundary. It multiplexes
// self-contained compression codecs behind one-byte algorithm identifiers
// and reports outcomes as flat status codes, mirroring a foreign-function
// contract: no codec state crosses the boundary, callers own every buffer,
// and no call ever panics into the caller.
//
// Every entry point validates arguments before touching a codec, traps
// panics and converts them to PanicCaught, and returns byte counts with a
// Code. On BufferTooSmall the count is the minimum output capacity that
// would have succeeded; callers resize and retry. Identifiers and codes are
// wire-stable and shared with non-Go implementations of the same contract.
//
// All registry tables are fixed at load time, so entry points are safe for
// unbounded concurrent use.
package native

import "errors"

// Ping confirms the boundary is callable, returning 1.
func Ping() (alive int32) {
	defer func() {
		if r := recover(); r != nil {
			alive = int32(PanicCaught)
		}
	}()
	if hook := testHookDispatch; hook != nil {
		hook("ping", 0)
	}
	return 1
}

// EstimateMaxOutputSize returns a worst-case output capacity for
// compressing inputLen bytes with the given algorithm. A buffer of the
// returned size never yields BufferTooSmall from Compress. The level does
// not change the bound; it is accepted for signature parity with Compress.
func EstimateMaxOutputSize(algo uint8, level int32, inputLen int) (size int, code Code) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic trapped at boundary", "op", "estimate", "algo", algo, "panic", r)
			size, code = 0, PanicCaught
		}
	}()
	if inputLen < 0 {
		log.Error("estimate: negative input length", "algo", algo, "input_len", inputLen)
		return 0, InvalidArgument
	}
	n, err := dispatchEstimate(algo, inputLen)
	return finish("estimate", algo, n, err)
}

// Compress compresses src into dst with the given algorithm and level and
// returns the number of bytes written. A negative level selects the
// algorithm default; out-of-range levels are clamped. On BufferTooSmall
// the returned count is the capacity to retry with. Only dst is written,
// and only within its length.
func Compress(algo uint8, level int32, src, dst []byte) (n int, code Code) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic trapped at boundary", "op", "compress", "algo", algo, "panic", r)
			n, code = 0, PanicCaught
		}
	}()
	if dst == nil {
		log.Error("compress: nil output buffer", "algo", algo)
		return 0, InvalidArgument
	}
	log.Debug("compress", "algo", algo, "level", level, "input_len", len(src), "output_cap", len(dst))
	w, err := dispatchCompress(algo, level, src, dst)
	n, code = finish("compress", algo, w, err)
	if code == Success {
		log.Debug("compress done", "algo", algo, "input_len", len(src), "output_len", n)
	}
	return n, code
}

// Decompress decompresses src into dst and returns the number of bytes
// written. On BufferTooSmall the returned count is the capacity to retry
// with. Only dst is written, and only within its length.
func Decompress(algo uint8, src, dst []byte) (n int, code Code) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic trapped at boundary", "op", "decompress", "algo", algo, "panic", r)
			n, code = 0, PanicCaught
		}
	}()
	if dst == nil {
		log.Error("decompress: nil output buffer", "algo", algo)
		return 0, InvalidArgument
	}
	log.Debug("decompress", "algo", algo, "input_len", len(src), "output_cap", len(dst))
	w, err := dispatchDecompress(algo, src, dst)
	n, code = finish("decompress", algo, w, err)
	if code == Success {
		log.Debug("decompress done", "algo", algo, "input_len", len(src), "output_len", n)
	}
	return n, code
}

// finish folds a dispatch result onto the wire: nil is Success, a
// tooSmallError surfaces its capacity hint, and everything else is a codec
// failure. BufferTooSmall logs at debug because it is an expected step of
// the caller's sizing protocol, not a fault.
func finish(op string, algo uint8, n int, err error) (int, Code) {
	if err == nil {
		return n, Success
	}
	var ts *tooSmallError
	switch {
	case errors.As(err, &ts):
		log.Debug(op+": output buffer too small", "algo", algo, "needed", ts.needed)
		return ts.needed, BufferTooSmall
	case errors.Is(err, errUnknownAlgo):
		log.Error(op+": unknown algorithm", "algo", algo)
		return 0, AlgoNotFound
	default:
		log.Error(op+": codec failure", "algo", algo, "error", err)
		return 0, Internal
	}
}
