// Package base32 implements the Crockford Base32 codec used by ULIDs.
//
// Values are unsigned 128-bit integers. Encode always produces exactly
// EncodedLen symbols, left-padded with '0', so that string order matches
// numeric order. Decode is case-insensitive and rejects any byte outside the
// alphabet; it does not enforce a length, so inputs longer than EncodedLen
// symbols wrap the 128-bit accumulator.
//
//	s := base32.Encode(uint128.From64(42)) // "0000000000000000000000001A"
//	v, err := base32.Decode(s)
package base32
