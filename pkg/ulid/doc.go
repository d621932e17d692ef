// Package ulid provides 128-bit Universally Unique Lexicographically Sortable
// Identifiers.
//
// # Format
//
// A ULID is 16 bytes big-endian: [48-bit ms timestamp][80-bit random]. The
// text form is 26 Crockford Base32 symbols, zero padded, so byte order, numeric
// order and string order all agree.
//
// # Monotonicity
//
// A Generator keeps the last issued (timestamp, random) pair behind a mutex.
// Within one millisecond the random part is incremented by one; a new
// millisecond resamples it. Two policies share the same state:
//   - Strict fails with ErrRandomOverflow when the random part is exhausted
//     and with ErrClockRegression when the clock goes backwards.
//   - Permissive resamples on overflow and keeps the last timestamp when the
//     clock regresses.
//
// Usage
//
//	id, err := ulid.NewMonotonic() // process-wide generator, strict
//	s := id.String()               // "01ARZ3NDEKTSV4RRFFQ69G5FAV"
//	u := id.UUID()                 // "01563e3a-b5d3-d676-4c61-efb99302bd5b"
//	back, err := ulid.Parse(s)
package ulid
