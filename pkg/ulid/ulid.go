package ulid

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rzbill/ulidd/pkg/base32"
	"lukechampine.com/uint128"
)

const (
	// EncodedSize is the length of the text form.
	EncodedSize = base32.EncodedLen
	// BinarySize is the length of the binary form.
	BinarySize = 16

	TimestampBits = 48
	RandomBits    = 80

	// MaxTimestamp is the largest representable millisecond timestamp.
	MaxTimestamp uint64 = 1<<TimestampBits - 1

	timestampSymbols = 10
)

// MaxRandom is the largest 80-bit random component.
var MaxRandom = uint128.New(^uint64(0), 1<<(RandomBits-64)-1)

// ULID is a 128-bit identifier encoded as 16 bytes big-endian:
// [6 bytes ms_timestamp][10 bytes random].
type ULID [BinarySize]byte

// Zero is the zero value ULID.
var Zero ULID

// FromParts composes a ULID. Inputs wider than their field are truncated.
func FromParts(ms uint64, random uint128.Uint128) ULID {
	v := uint128.From64(ms & MaxTimestamp).Lsh(RandomBits).Or(random.And(MaxRandom))
	return FromUint128(v)
}

// FromUint128 reinterprets a raw 128-bit value as a ULID.
func FromUint128(v uint128.Uint128) ULID {
	var u ULID
	v.PutBytesBE(u[:])
	return u
}

// WithTimestamp returns a ULID for ms with a freshly sampled random part.
// It does not touch any Generator state.
func WithTimestamp(ms uint64) ULID {
	return FromParts(ms, uint128.New(rand.Uint64(), rand.Uint64()))
}

// Uint128 returns the raw 128-bit value.
func (u ULID) Uint128() uint128.Uint128 { return uint128.FromBytesBE(u[:]) }

// Timestamp returns the millisecond timestamp.
func (u ULID) Timestamp() uint64 { return binary.BigEndian.Uint64(u[0:8]) >> 16 }

// Random returns the 80-bit random component.
func (u ULID) Random() uint128.Uint128 { return u.Uint128().And(MaxRandom) }

// Time returns the timestamp as a time.Time.
func (u ULID) Time() time.Time { return time.UnixMilli(int64(u.Timestamp())) }

// Bytes returns a copy of the 16-byte representation.
func (u ULID) Bytes() []byte { b := make([]byte, BinarySize); copy(b, u[:]); return b }

// String returns the 26-character Crockford Base32 form.
func (u ULID) String() string { return base32.Encode(u.Uint128()) }

// UUID returns the value as lowercase hyphenated hex (8-4-4-4-12).
func (u ULID) UUID() string { return uuid.UUID(u).String() }

// Compare returns -1, 0, 1 based on numeric (and lexical) order.
func (u ULID) Compare(other ULID) int { return bytes.Compare(u[:], other[:]) }

// IsZero reports whether u is the zero value.
func (u ULID) IsZero() bool { return u == Zero }

// MarshalText implements encoding.TextMarshaler.
func (u ULID) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *ULID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u ULID) MarshalBinary() ([]byte, error) { return u.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *ULID) UnmarshalBinary(b []byte) error {
	if len(b) != BinarySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrLengthMismatch, len(b), BinarySize)
	}
	copy(u[:], b)
	return nil
}

// Parse decodes a 26-character ULID, accepting either case.
func Parse(s string) (ULID, error) {
	if len(s) != EncodedSize {
		return ULID{}, lengthError(s)
	}
	v, err := base32.Decode(s)
	if err != nil {
		return ULID{}, err
	}
	return FromUint128(v), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ULID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// IsValid reports whether s has ULID shape: 26 characters, all from the
// alphabet in either case. It does not decode.
func IsValid(s string) bool {
	return len(s) == EncodedSize && base32.Valid(s)
}

// Normalize checks s and returns it uppercased.
func Normalize(s string) (string, error) {
	if len(s) != EncodedSize {
		return "", lengthError(s)
	}
	for i := 0; i < len(s); i++ {
		if !base32.ValidByte(s[i]) {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return "", fmt.Errorf("%w: %w", ErrFormat, &base32.CharError{Char: r, Offset: i})
		}
	}
	return strings.ToUpper(s), nil
}

// ToUUID converts ULID text to UUID text.
func ToUUID(s string) (string, error) {
	u, err := Parse(s)
	if err != nil {
		return "", err
	}
	return u.UUID(), nil
}

// FromUUID converts UUID text, hyphens optional, to ULID text. The bits are
// reinterpreted as-is; they need not hold a plausible timestamp.
func FromUUID(s string) (string, error) {
	hexOnly := strings.ReplaceAll(s, "-", "")
	if len(hexOnly) != 32 {
		return "", fmt.Errorf("%w: UUID must be 32 hex characters (with or without dashes), got %d", ErrFormat, len(hexOnly))
	}
	id, err := uuid.Parse(hexOnly)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return ULID(id).String(), nil
}

func lengthError(s string) error {
	return fmt.Errorf("%w: got %d characters, want %d", ErrLengthMismatch, len(s), EncodedSize)
}
