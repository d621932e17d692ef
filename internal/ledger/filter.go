package ledger

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/cel-go/cel"

	"github.com/rzbill/ulidd/pkg/ulid"
)

// celFilter wraps a compiled CEL program evaluated per ledger entry. When
// disabled, Eval always returns true.
type celFilter struct {
	prog    cel.Program
	enabled bool
}

func newCELFilter(expr string) (celFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return celFilter{}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("ts_ms", cel.IntType),
		cel.Variable("text", cel.StringType),
		cel.Variable("random_hex", cel.StringType),
		cel.Variable("mode", cel.StringType),
		cel.Variable("source", cel.StringType),
		cel.Variable("issued_ms", cel.IntType),
		// current time, for "issued in the last hour" style windows
		cel.Variable("now_ms", cel.IntType),
	)
	if err != nil {
		return celFilter{}, err
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return celFilter{}, iss.Err()
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return celFilter{}, errNotBool
	}
	prog, err := env.Program(ast)
	if err != nil {
		return celFilter{}, err
	}
	return celFilter{prog: prog, enabled: true}, nil
}

// Eval reports whether the entry matches. Evaluation errors count as no match.
func (f celFilter) Eval(id ulid.ULID, rec Record, nowMs int64) bool {
	if !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"ts_ms":      int64(id.Timestamp()),
		"text":       id.String(),
		"random_hex": hex.EncodeToString(id[6:]),
		"mode":       rec.Mode,
		"source":     rec.Source,
		"issued_ms":  rec.IssuedMs,
		"now_ms":     nowMs,
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}

// ValidateFilter compiles expr without running it, for request validation.
func ValidateFilter(expr string) error {
	_, err := newCELFilter(expr)
	return err
}

func nowMs() int64 { return time.Now().UnixMilli() }
