package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// TextFormatter renders "time LEVEL message key=value ..." lines.
type TextFormatter struct {
	// TimestampFormat defaults to RFC3339 with milliseconds.
	TimestampFormat string
	// DisableCaller drops the caller column.
	DisableCaller bool
}

// Format implements Formatter.
func (f *TextFormatter) Format(e *Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = "2006-01-02T15:04:05.000Z07:00"
	}
	var b bytes.Buffer
	b.WriteString(e.Timestamp.Format(layout))
	b.WriteByte(' ')
	fmt.Fprintf(&b, "%-5s", e.Level.String())
	b.WriteByte(' ')
	b.WriteString(e.Message)
	for _, k := range sortedKeys(e.Fields) {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		writeTextValue(&b, e.Fields[k])
	}
	if !f.DisableCaller && e.Caller != "" {
		b.WriteString(" caller=")
		b.WriteString(e.Caller)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func writeTextValue(b *bytes.Buffer, v interface{}) {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case time.Duration:
		s = t.String()
	case fmt.Stringer:
		s = t.String()
	case nil:
		s = "<nil>"
	default:
		s = fmt.Sprint(t)
	}
	if needsQuote(s) {
		fmt.Fprintf(b, "%q", s)
		return
	}
	b.WriteString(s)
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return true
		}
	}
	return false
}

// JSONFormatter renders one JSON object per line.
type JSONFormatter struct{}

// Format implements Formatter.
func (f *JSONFormatter) Format(e *Entry) ([]byte, error) {
	m := make(map[string]interface{}, len(e.Fields)+4)
	for k, v := range e.Fields {
		if d, ok := v.(time.Duration); ok {
			v = d.String()
		}
		m[k] = v
	}
	m["time"] = e.Timestamp.Format(time.RFC3339Nano)
	m["level"] = e.Level.String()
	m["msg"] = e.Message
	if e.Caller != "" {
		m["caller"] = e.Caller
	}
	out, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func sortedKeys(f Fields) []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
