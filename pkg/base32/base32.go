package base32

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"lukechampine.com/uint128"
)

const (
	// Alphabet is the Crockford Base32 symbol set (no I, L, O, U).
	Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	// EncodedLen is the fixed width of an encoded 128-bit value.
	EncodedLen = 26

	invalid = 0xFF
)

// ErrInvalidCharacter is matched by every decode failure.
var ErrInvalidCharacter = errors.New("base32: invalid character")

// CharError reports the first byte Decode could not map.
type CharError struct {
	Char   rune
	Offset int
}

func (e *CharError) Error() string {
	return fmt.Sprintf("%v %q at offset %d", ErrInvalidCharacter, e.Char, e.Offset)
}

// Is lets errors.Is(err, ErrInvalidCharacter) succeed.
func (e *CharError) Is(target error) bool { return target == ErrInvalidCharacter }

var decodeTable [256]byte

func init() {
	for i := range decodeTable {
		decodeTable[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		decodeTable[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			decodeTable[c+'a'-'A'] = byte(i)
		}
	}
}

// Encode returns the fixed-width, zero-padded encoding of v.
func Encode(v uint128.Uint128) string {
	var buf [EncodedLen]byte
	Put(buf[:], v)
	return string(buf[:])
}

// Put writes the len(dst) least significant symbols of v into dst, most
// significant first. Positions not reached by v are set to '0'.
func Put(dst []byte, v uint128.Uint128) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = Alphabet[v.Lo&0x1F]
		v = v.Rsh(5)
	}
}

// Decode parses s into a 128-bit value.
func Decode(s string) (uint128.Uint128, error) {
	var acc uint128.Uint128
	for i := 0; i < len(s); i++ {
		d := decodeTable[s[i]]
		if d == invalid {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return uint128.Zero, &CharError{Char: r, Offset: i}
		}
		acc = acc.Lsh(5).Or64(uint64(d))
	}
	return acc, nil
}

// Valid reports whether every byte of s belongs to the alphabet, in either case.
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if decodeTable[s[i]] == invalid {
			return false
		}
	}
	return true
}

// ValidByte reports whether c is an alphabet symbol, in either case.
func ValidByte(c byte) bool { return decodeTable[c] != invalid }
