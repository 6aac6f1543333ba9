package native

// LZF is registered so its identifier stays reserved on the wire, but no
// maintained Go implementation exists to back it. Both transforms report
// an internal error until one lands.

func lzfBound(n int) int {
	return 2*n + 64
}

func lzfCompress(src, dst []byte) (int, error) {
	return 0, errNotImplemented
}

func lzfDecompress(src, dst []byte) (int, error) {
	return 0, errNotImplemented
}
