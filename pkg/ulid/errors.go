package ulid

import (
	"errors"

	"github.com/rzbill/ulidd/pkg/base32"
)

var (
	// ErrInvalidCharacter is returned when text contains a byte outside the
	// Crockford alphabet.
	ErrInvalidCharacter = base32.ErrInvalidCharacter
	// ErrLengthMismatch is returned when ULID text is not exactly 26 characters.
	ErrLengthMismatch = errors.New("ulid: length mismatch")
	// ErrFormat is returned for malformed text, including UUID text that does
	// not reduce to 32 hex characters.
	ErrFormat = errors.New("ulid: invalid format")
	// ErrInvalidHex is returned when UUID text contains non-hex characters.
	ErrInvalidHex = errors.New("ulid: invalid hex characters in UUID")
	// ErrRandomOverflow is returned by strict generation when the random
	// component is exhausted within one millisecond.
	ErrRandomOverflow = errors.New("ulid: random component overflow, too many ULIDs in the same millisecond")
	// ErrClockRegression is returned by strict generation when the clock is
	// behind the last issued timestamp.
	ErrClockRegression = errors.New("ulid: clock moved backwards")
)
