package simplelogger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Environment variables that configure logging.
const (
	EnvLogFile  = "NVDADMP_LOG_FILE"
	EnvLogLevel = "NVDADMP_LOG_LEVEL"
)

var mu sync.Mutex

// Log writes an info-level entry. Entries are JSON lines (zerolog) appended to the file specified by the NVDADMP_LOG_FILE environment variable.
//
// If NVDADMP_LOG_FILE is unset/empty or the path can't be opened as a file, Log is a no-op. Log never writes to stdout, which carries protocol frames.
func Log(format string, args ...any) {
	write(zerolog.InfoLevel, format, args...)
}

// Debug is like Log, but writes a debug-level entry. Debug entries are dropped unless NVDADMP_LOG_LEVEL is "debug" or "trace".
func Debug(format string, args ...any) {
	write(zerolog.DebugLevel, format, args...)
}

// Error is like Log, but writes an error-level entry.
func Error(format string, args ...any) {
	write(zerolog.ErrorLevel, format, args...)
}

// minLevel returns the level set by NVDADMP_LOG_LEVEL, or info if it is unset or unparseable.
func minLevel() zerolog.Level {
	s := strings.TrimSpace(os.Getenv(EnvLogLevel))
	if s == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func write(level zerolog.Level, format string, args ...any) {
	path := os.Getenv(EnvLogFile)
	if path == "" {
		return
	}
	if level < minLevel() {
		return
	}

	// Serialize open/write/close to reduce interleaving within a single process.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	logger := zerolog.New(f).With().Timestamp().Int("pid", os.Getpid()).Logger()
	logger.WithLevel(level).Msg(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}
