package idsvc

import (
	"errors"

	"github.com/rzbill/ulidd/internal/ledger"
	"github.com/rzbill/ulidd/pkg/ulid"
)

var (
	// ErrBatchTooLarge is returned when count exceeds generator.maxBatch.
	ErrBatchTooLarge = errors.New("ids: batch too large")
	// ErrInvalidNumber is returned by EncodeBase32 for a non-decimal input.
	ErrInvalidNumber = errors.New("ids: invalid decimal number")
	// ErrLedgerDisabled is returned by ledger reads when no ledger is open.
	ErrLedgerDisabled = errors.New("ids: ledger disabled")
)

// Kind buckets errors for transport status mapping.
type Kind int

const (
	KindInternal Kind = iota
	// KindInvalid covers malformed input: characters, lengths, hex, counts.
	KindInvalid
	// KindExhausted is random-space overflow within one millisecond.
	KindExhausted
	// KindClock is a backwards clock in strict mode.
	KindClock
	KindNotFound
	KindUnavailable
)

// Classify maps an error returned by this package (or pkg/ulid) to a Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ulid.ErrInvalidCharacter),
		errors.Is(err, ulid.ErrLengthMismatch),
		errors.Is(err, ulid.ErrFormat),
		errors.Is(err, ulid.ErrInvalidHex),
		errors.Is(err, ErrBatchTooLarge),
		errors.Is(err, ErrInvalidNumber),
		errors.Is(err, ledger.ErrInvalidFilter):
		return KindInvalid
	case errors.Is(err, ulid.ErrRandomOverflow):
		return KindExhausted
	case errors.Is(err, ulid.ErrClockRegression):
		return KindClock
	case errors.Is(err, ledger.ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrLedgerDisabled):
		return KindUnavailable
	}
	return KindInternal
}
