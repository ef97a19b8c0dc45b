// Package util provides common utilities including logging helpers,
// file system locations, and small value conversions.
package util

import (
	"io"
	"log"
	"os"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}

// DiscardLogs silences the standard logger. The TUI owns the terminal, so
// without a log file anything logged would corrupt the screen.
func DiscardLogs() {
	log.SetOutput(io.Discard)
}

// EnsureDir creates dir and its parents.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
