// Package logger owns the process-wide zerolog instance. Initialise once in
// main with Init; everything downstream receives the logger by value.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger built by Init.
type Options struct {
	// Level names the minimum level (trace, debug, info, warn, error).
	// Empty or unrecognised values fall back to info.
	Level string
	// Pretty switches to the human-readable console writer. Production
	// deployments leave this off and ship JSON.
	Pretty bool
	// Output is where log lines go. Defaults to os.Stdout.
	Output io.Writer
}

var (
	instance zerolog.Logger
	once     sync.Once
)

// Init builds the process logger. Only the first call has any effect;
// later calls return the same logger regardless of their options.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		lvl, err := zerolog.ParseLevel(opts.Level)
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(lvl)

		instance = zerolog.New(out).
			Level(lvl).
			With().
			Timestamp().
			Caller().
			Logger()
	})
	return instance
}

// Get returns the logger built by Init. Before Init runs it returns a
// disabled logger, so package-level callers never nil-panic.
func Get() zerolog.Logger {
	return instance
}
