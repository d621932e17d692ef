package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level represents the severity level of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// Fields is a map of field names to values.
type Fields map[string]interface{}

// ComponentKey tags a logger with the subsystem that owns it.
const ComponentKey = "component"

// Entry represents a single log entry.
type Entry struct {
	Level     Level
	Message   string
	Fields    Fields
	Timestamp time.Time
	Caller    string
}

// Logger defines the core logging interface for ulidd components.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	// Key-value variants: args are k1, v1, k2, v2, ...
	Debugf(msg string, args ...interface{})
	Infof(msg string, args ...interface{})
	Warnf(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})

	With(fields ...Field) Logger
	WithComponent(component string) Logger
	WithError(err error) Logger

	SetLevel(level Level)
	GetLevel() Level
}

// Formatter defines the interface for formatting log entries.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// Output defines the interface for log outputs.
type Output interface {
	Write(entry *Entry, formattedEntry []byte) error
	Close() error
}

// LoggerOption is a function that configures a logger.
type LoggerOption func(*core)

// core is shared by a logger and every logger derived from it with With.
type core struct {
	mu        sync.Mutex
	level     Level
	formatter Formatter
	outputs   []Output
}

// BaseLogger implements the Logger interface.
type BaseLogger struct {
	core       *core
	slogLogger *slog.Logger
}

// NewLogger creates a new logger with the given options.
func NewLogger(options ...LoggerOption) Logger {
	c := &core{
		level:     InfoLevel,
		formatter: &JSONFormatter{},
	}
	for _, option := range options {
		option(c)
	}
	if len(c.outputs) == 0 {
		c.outputs = append(c.outputs, NewConsoleOutput())
	}
	return &BaseLogger{core: c, slogLogger: slog.New(newBridgeHandler(c))}
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) LoggerOption {
	return func(c *core) { c.level = level }
}

// WithFormatter sets the log formatter.
func WithFormatter(formatter Formatter) LoggerOption {
	return func(c *core) { c.formatter = formatter }
}

// WithOutput adds an output to the logger.
func WithOutput(output Output) LoggerOption {
	return func(c *core) { c.outputs = append(c.outputs, output) }
}

func (l *BaseLogger) log(level Level, msg string, attrs []slog.Attr) {
	if level < l.GetLevel() {
		return
	}
	// skip runtime.Callers, log and the exported method
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), toSlogLevel(level), msg, pcs[0])
	r.AddAttrs(attrs...)
	_ = l.slogLogger.Handler().Handle(context.Background(), r)
	if level == FatalLevel {
		os.Exit(1)
	}
}

func (l *BaseLogger) Debug(msg string, fields ...Field) {
	l.log(DebugLevel, msg, attrsFromFields(fields))
}
func (l *BaseLogger) Info(msg string, fields ...Field) {
	l.log(InfoLevel, msg, attrsFromFields(fields))
}
func (l *BaseLogger) Warn(msg string, fields ...Field) {
	l.log(WarnLevel, msg, attrsFromFields(fields))
}
func (l *BaseLogger) Error(msg string, fields ...Field) {
	l.log(ErrorLevel, msg, attrsFromFields(fields))
}
func (l *BaseLogger) Fatal(msg string, fields ...Field) {
	l.log(FatalLevel, msg, attrsFromFields(fields))
}

func (l *BaseLogger) Debugf(msg string, args ...interface{}) {
	l.log(DebugLevel, msg, argsToAttrs(args))
}
func (l *BaseLogger) Infof(msg string, args ...interface{}) { l.log(InfoLevel, msg, argsToAttrs(args)) }
func (l *BaseLogger) Warnf(msg string, args ...interface{}) { l.log(WarnLevel, msg, argsToAttrs(args)) }
func (l *BaseLogger) Errorf(msg string, args ...interface{}) {
	l.log(ErrorLevel, msg, argsToAttrs(args))
}

// With returns a logger that adds fields to every entry.
func (l *BaseLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	return &BaseLogger{core: l.core, slogLogger: l.slogLogger.With(attrsToAny(attrsFromFields(fields))...)}
}

// WithComponent tags logs with a component name.
func (l *BaseLogger) WithComponent(component string) Logger {
	return l.With(Component(component))
}

// WithError attaches err under the "error" key.
func (l *BaseLogger) WithError(err error) Logger {
	return l.With(Err(err))
}

// SetLevel sets the minimum log level for this logger and its derivatives.
func (l *BaseLogger) SetLevel(level Level) {
	l.core.mu.Lock()
	l.core.level = level
	l.core.mu.Unlock()
}

// GetLevel returns the current minimum log level.
func (l *BaseLogger) GetLevel() Level {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	return l.core.level
}
