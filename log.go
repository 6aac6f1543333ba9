package ironpress

import (
	"log/slog"

	"github.com/ironpress/ironpress/native"
)

// SetLogger configures the logger used by the dispatch boundary. Boundary
// calls log parameters and outcomes at debug level and codec faults at
// error level; the default is slog.Default().
func SetLogger(l *slog.Logger) {
	native.SetLogger(l)
}
