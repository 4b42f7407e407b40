// Package logging builds the structured zerolog loggers used across poolheat.
//
// Loggers are configured once per command invocation from the merged
// configuration, then carried through the call chain on a context.Context.
// Library packages retrieve them with FromContext and never construct their
// own.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Supported output destinations.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Supported log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatText    = "text"
)

const logFilePerm = 0o600

// Config describes how a logger is built.
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // json, console, text
	Output string // stderr, stdout, file
	File   string // path used when Output is "file"
	Caller bool   // include caller file:line
}

// LogPathResult is the outcome of NewLoggerWithPath.
//
// When the configured log file cannot be opened the logger falls back to
// stderr and FallbackUsed/FallbackReason explain why.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	if err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}

// NewLogger builds a logger writing to the configured stream. File output is
// not opened here; use NewLoggerWithPath for that.
func NewLogger(cfg Config) zerolog.Logger {
	out := io.Writer(os.Stderr)
	if cfg.Output == OutputStdout {
		out = os.Stdout
	}
	return newLogger(cfg, out)
}

// NewLoggerWithPath builds a logger and opens the log file when cfg.Output is
// "file". Failure to open the file is never fatal.
func NewLoggerWithPath(cfg Config) LogPathResult {
	if cfg.Output != OutputFile || cfg.File == "" {
		return LogPathResult{Logger: NewLogger(cfg)}
	}

	f, err := openLogFile(cfg.File)
	if err != nil {
		fallback := cfg
		fallback.Output = OutputStderr
		return LogPathResult{
			Logger:         NewLogger(fallback),
			FallbackUsed:   true,
			FallbackReason: err.Error(),
		}
	}

	// Files always get JSON lines; console formatting is for terminals.
	fileCfg := cfg
	if fileCfg.Format != FormatJSON {
		fileCfg.Format = FormatJSON
	}

	return LogPathResult{
		Logger:    newLogger(fileCfg, f),
		UsingFile: true,
		FilePath:  cfg.File,
		file:      f,
	}
}

// NewLoggerWriter builds a logger on an arbitrary writer. Used by tests.
func NewLoggerWriter(cfg Config, w io.Writer) zerolog.Logger {
	return newLogger(cfg, w)
}

func newLogger(cfg Config, w io.Writer) zerolog.Logger {
	if isConsoleFormat(cfg.Format) {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.Format == FormatText,
		}
	}

	ctx := zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		Hook(TraceHook{}).
		With().
		Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// ValidLevel reports whether level is a recognized level name.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// ValidFormat reports whether format is a recognized log format.
func ValidFormat(format string) bool {
	switch format {
	case FormatJSON, FormatConsole, FormatText:
		return true
	default:
		return false
	}
}

// PrintLogPathMessage tells the user where logs are going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to: %s\n", path)
}

// PrintFallbackWarning tells the user file logging was not possible.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file, logging to stderr (%s)\n", reason)
}

func isConsoleFormat(format string) bool {
	return format == FormatConsole || format == FormatText
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
