package log

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
)

// bridgeHandler is a slog.Handler that routes records through the shared
// formatter and outputs.
type bridgeHandler struct {
	core  *core
	attrs []slog.Attr
	group string
}

func newBridgeHandler(c *core) *bridgeHandler {
	return &bridgeHandler{core: c}
}

// Enabled gates by the core level.
func (h *bridgeHandler) Enabled(_ context.Context, level slog.Level) bool {
	h.core.mu.Lock()
	defer h.core.mu.Unlock()
	return h.core.level <= fromSlogLevel(level)
}

// Handle converts the slog record to an Entry and writes it to every output.
func (h *bridgeHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(Fields, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		fields[h.key(a.Key)] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[h.key(a.Key)] = a.Value.Any()
		return true
	})

	entry := &Entry{
		Level:     fromSlogLevel(r.Level),
		Message:   r.Message,
		Fields:    fields,
		Timestamp: r.Time,
		Caller:    callerFromPC(r.PC),
	}

	h.core.mu.Lock()
	defer h.core.mu.Unlock()
	formatted, err := h.core.formatter.Format(entry)
	if err != nil {
		return err
	}
	for _, out := range h.core.outputs {
		_ = out.Write(entry, formatted)
	}
	return nil
}

// WithAttrs returns a copy of the handler with additional base attributes.
func (h *bridgeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	if len(attrs) > 0 {
		nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	}
	return &nh
}

// WithGroup returns a copy of the handler whose keys are prefixed by name.
func (h *bridgeHandler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.group = h.key(name)
	return &nh
}

func (h *bridgeHandler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}

func callerFromPC(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	if f.File == "" {
		return ""
	}
	return filepath.Base(filepath.Dir(f.File)) + "/" + filepath.Base(f.File) + ":" + strconv.Itoa(f.Line)
}

// slogFatal sits above slog.LevelError so FATAL survives the round trip.
const slogFatal = slog.LevelError + 4

func toSlogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	case FatalLevel:
		return slogFatal
	default:
		return slog.LevelInfo
	}
}

func fromSlogLevel(level slog.Level) Level {
	switch {
	case level <= slog.LevelDebug:
		return DebugLevel
	case level < slog.LevelWarn:
		return InfoLevel
	case level < slog.LevelError:
		return WarnLevel
	case level < slogFatal:
		return ErrorLevel
	default:
		return FatalLevel
	}
}

func attrsFromFields(fields []Field) []slog.Attr {
	if len(fields) == 0 {
		return nil
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	return attrs
}

// argsToAttrs converts key-value variadic args (k1, v1, k2, v2, ...) to slog.Attr.
func argsToAttrs(args []interface{}) []slog.Attr {
	if len(args) == 0 {
		return nil
	}
	attrs := make([]slog.Attr, 0, len(args)/2+1)
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			if key, ok := args[i].(string); ok {
				attrs = append(attrs, slog.Any(key, args[i+1]))
			} else {
				attrs = append(attrs, slog.Any("arg"+strconv.Itoa(i), args[i+1]))
			}
		} else {
			attrs = append(attrs, slog.Any("arg"+strconv.Itoa(i), args[i]))
		}
	}
	return attrs
}

func attrsToAny(attrs []slog.Attr) []any {
	out := make([]any, len(attrs))
	for i := range attrs {
		out[i] = attrs[i]
	}
	return out
}
