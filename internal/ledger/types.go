package ledger

import (
	"errors"

	"github.com/rzbill/ulidd/pkg/ulid"
)

var (
	// ErrNotFound is returned by Get for an ID the ledger never recorded.
	ErrNotFound = errors.New("ledger: not found")
	// ErrInvalidFilter wraps CEL compile errors from List.
	ErrInvalidFilter = errors.New("ledger: invalid filter")

	errNotBool = errors.New("filter must evaluate to a bool")
)

// Record is the stored value for one issued ULID.
type Record struct {
	// Mode is the generation policy, "strict" or "permissive".
	Mode string `json:"mode"`
	// Source names the surface that issued it: grpc, http, cli.
	Source string `json:"source,omitempty"`
	// IssuedMs is the wall clock at recording time, which may differ from
	// the ULID timestamp when permissive mode rode out a clock regression.
	IssuedMs int64 `json:"issued_ms"`
}

// Entry pairs an ID with its record.
type Entry struct {
	ID ulid.ULID `json:"id"`
	Record
}

// Query selects a time window of entries. FromMs is inclusive, ToMs exclusive;
// zero leaves that side open. Limit<=0 means no limit.
type Query struct {
	FromMs  int64
	ToMs    int64
	Filter  string
	Limit   int
	Reverse bool
}

// Stats summarizes the ledger contents.
type Stats struct {
	Count uint64    `json:"count"`
	First ulid.ULID `json:"first"`
	Last  ulid.ULID `json:"last"`
}
