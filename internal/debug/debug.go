// Package debug provides optional file-based debug logging.
//
// When the BLOCKLY_DEBUG environment variable is set to a file path, debug
// messages are appended to that file as slog text records. Otherwise,
// logging is a no-op.
package debug

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

var (
	once   sync.Once
	logger *slog.Logger
)

func resolve() *slog.Logger {
	once.Do(func() {
		path := os.Getenv("BLOCKLY_DEBUG")
		if path == "" {
			return
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	})
	return logger
}

// Log writes a formatted debug message if debug logging is enabled.
func Log(format string, args ...any) {
	l := resolve()
	if l == nil {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Enabled reports whether debug logging is active. Callers can use it to
// skip building expensive log arguments.
func Enabled() bool {
	return resolve() != nil
}
