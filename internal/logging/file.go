package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ParseLevel maps "debug", "info", "warn" or "error" (any case) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}

// OpenFile returns a text logger appending to path at the given level. The
// returned closer releases the file. An empty path yields a no-op logger.
func OpenFile(path string, level slog.Level) (*SlogLogger, io.Closer, error) {
	if path == "" {
		return NewNopLogger(), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), f, nil
}
