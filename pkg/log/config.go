package log

import (
	"fmt"
	stdlog "log"
	"log/slog"
	"strings"
)

// Config declares a logger.
type Config struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
	// Output is "console" (default) or "null".
	Output string `json:"output" yaml:"output"`
}

// ApplyConfig builds a Logger from cfg.
func ApplyConfig(cfg *Config) (Logger, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	var formatter Formatter
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		formatter = &TextFormatter{}
	case "json":
		formatter = &JSONFormatter{}
	default:
		return nil, fmt.Errorf("unknown log format %q; use text|json", cfg.Format)
	}
	var output Output
	switch strings.ToLower(cfg.Output) {
	case "", "console":
		output = NewConsoleOutput()
	case "null":
		output = NullOutput{}
	default:
		return nil, fmt.Errorf("unknown log output %q; use console|null", cfg.Output)
	}
	return NewLogger(WithLevel(level), WithFormatter(formatter), WithOutput(output)), nil
}

// ToStdLogger returns a *log.Logger that writes through l at the given level.
func ToStdLogger(l Logger, level Level) *stdlog.Logger {
	if bl, ok := l.(*BaseLogger); ok {
		return slog.NewLogLogger(bl.slogLogger.Handler(), toSlogLevel(level))
	}
	return stdlog.New(stdWriter{l: l}, "", 0)
}

// RedirectStdLog sends output of the std log package through l at INFO.
func RedirectStdLog(l Logger) {
	if bl, ok := l.(*BaseLogger); ok {
		// SetDefault wires the std log package to the handler as well.
		slog.SetDefault(bl.slogLogger)
		return
	}
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdWriter{l: l})
}

type stdWriter struct{ l Logger }

func (w stdWriter) Write(p []byte) (int, error) {
	w.l.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
