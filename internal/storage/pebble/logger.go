package pebblestore

import (
	"fmt"

	"github.com/cockroachdb/pebble"

	logpkg "github.com/rzbill/ulidd/pkg/log"
)

// Logger routes Pebble's printf-style logging into the structured logger.
type Logger struct {
	l logpkg.Logger
}

var _ pebble.Logger = (*Logger)(nil)

// NewLogger tags every line with component=pebble.
func NewLogger(l logpkg.Logger) *Logger {
	return &Logger{l: l.WithComponent("pebble")}
}

func (p *Logger) Infof(format string, args ...interface{}) {
	p.l.Debug(fmt.Sprintf(format, args...))
}

func (p *Logger) Errorf(format string, args ...interface{}) {
	p.l.Error(fmt.Sprintf(format, args...))
}

// Fatalf logs at fatal level; the facade exits the process.
func (p *Logger) Fatalf(format string, args ...interface{}) {
	p.l.Fatal(fmt.Sprintf(format, args...))
}
