package telemetry

import (
	"io"
	"log/slog"
	"os"
)

// InitLogger configures the default slog logger. Diagnostics go to stderr
// so they never mix with the comparison table on stdout.
func InitLogger(debug bool) {
	initLogger(debug, os.Stderr)
}

func initLogger(debug bool, w io.Writer) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
