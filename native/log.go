package native

import "log/slog"

// Global logger for the dispatch boundary
var log = slog.Default()

// SetLogger configures the boundary logger
func SetLogger(l *slog.Logger) {
	log = l
}
