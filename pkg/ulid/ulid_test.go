package ulid

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"testing"

	oklog "github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

const known = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

func TestKnownULIDFields(t *testing.T) {
	u, err := Parse(known)
	require.NoError(t, err)
	require.Equal(t, uint64(1469922850259), u.Timestamp())
	require.Equal(t, "1012768647078601740696923", u.Random().String())
	require.Equal(t, "01563e3a-b5d3-d676-4c61-efb99302bd5b", u.UUID())
	require.Equal(t, known, u.String())

	ok := oklog.MustParse(known)
	require.Equal(t, ok.Time(), u.Timestamp())
}

func TestFromPartsTruncates(t *testing.T) {
	u := FromParts(MaxTimestamp+5, uint128.Max)
	require.Equal(t, uint64(4), u.Timestamp())
	require.True(t, u.Random().Equals(MaxRandom))

	v := FromParts(1234, uint128.From64(99))
	require.Equal(t, uint64(1234), v.Timestamp())
	require.Equal(t, uint64(99), v.Random().Lo)
	require.Equal(t, v, FromUint128(v.Uint128()))
}

func TestSortOrderAcrossTimestamps(t *testing.T) {
	lowRandom := []uint128.Uint128{uint128.Zero, uint128.From64(1), MaxRandom}
	for ts := uint64(0); ts < 2000; ts += 37 {
		for _, r1 := range lowRandom {
			for _, r2 := range lowRandom {
				a := FromParts(ts, r1).String()
				b := FromParts(ts+1, r2).String()
				require.Less(t, a, b)
			}
		}
	}
	// extreme end of the timestamp range
	require.Less(t, FromParts(MaxTimestamp-1, MaxRandom).String(), FromParts(MaxTimestamp, uint128.Zero).String())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(known[:25])
	require.True(t, errors.Is(err, ErrLengthMismatch))
	_, err = Parse(known + "X")
	require.True(t, errors.Is(err, ErrLengthMismatch))
	_, err = Parse("")
	require.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = Parse("01ARZ3NDEKTSV4RRFFQ69G5FAU")
	require.True(t, errors.Is(err, ErrInvalidCharacter))
	require.Contains(t, err.Error(), "'U'")
}

func TestParseLowercase(t *testing.T) {
	a := MustParse(known)
	b := MustParse(strings.ToLower(known))
	require.Equal(t, a, b)
}

func TestIsValid(t *testing.T) {
	for _, s := range []string{known, strings.ToLower(known), "7ZZZZZZZZZZZZZZZZZZZZZZZZZ", "01BX5ZZKBKACTAV9WEVGEMMVRZ"} {
		require.True(t, IsValid(s), s)
	}
	invalid := []string{"", known[:25], known + "0", "IIIIIIIIIIIIIIIIIIIIIIIIII", "01ARZ3NDEKTSV4RRFFQ69G5FA!"}
	for _, c := range "ILOUilou" {
		invalid = append(invalid, known[:25]+string(c))
	}
	for _, s := range invalid {
		require.False(t, IsValid(s), s)
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize(strings.ToLower(known))
	require.NoError(t, err)
	require.Equal(t, known, got)

	_, err = Normalize("short")
	require.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = Normalize(known[:25] + "o")
	require.True(t, errors.Is(err, ErrFormat))
	require.True(t, errors.Is(err, ErrInvalidCharacter))
}

func TestUUIDRoundTrip(t *testing.T) {
	g := NewGenerator()
	inputs := []string{known, strings.ToLower(known), "00000000000000000000000000", "7ZZZZZZZZZZZZZZZZZZZZZZZZZ"}
	for i := 0; i < 100; i++ {
		u, err := g.Next(Permissive)
		require.NoError(t, err)
		inputs = append(inputs, u.String())
	}
	for _, s := range inputs {
		id, err := ToUUID(s)
		require.NoError(t, err)
		require.Len(t, id, 36)
		require.Equal(t, strings.ToLower(id), id)

		back, err := FromUUID(id)
		require.NoError(t, err)
		require.Equal(t, strings.ToUpper(s), back)

		bare, err := FromUUID(strings.ReplaceAll(id, "-", ""))
		require.NoError(t, err)
		require.Equal(t, back, bare)
	}
}

func TestUUIDErrors(t *testing.T) {
	_, err := ToUUID("nope")
	require.True(t, errors.Is(err, ErrLengthMismatch))
	_, err = ToUUID(known[:25] + "L")
	require.True(t, errors.Is(err, ErrInvalidCharacter))

	_, err = FromUUID("01563e3a-b5d3-d676-4c61-efb99302bd5")
	require.True(t, errors.Is(err, ErrFormat))
	_, err = FromUUID("01563e3a-b5d3-d676-4c61-efb99302bd5bb")
	require.True(t, errors.Is(err, ErrFormat))
	_, err = FromUUID("01563e3a-b5d3-d676-4c61-efb99302bdzz")
	require.True(t, errors.Is(err, ErrInvalidHex))

	// arbitrary bits convert without timestamp checks
	got, err := FromUUID("ffffffff-ffff-ffff-ffff-ffffffffffff")
	require.NoError(t, err)
	require.Equal(t, "7ZZZZZZZZZZZZZZZZZZZZZZZZZ", got)
}

func TestWithTimestamp(t *testing.T) {
	const ts = 1672531200000
	seen := map[ULID]struct{}{}
	for i := 0; i < 100; i++ {
		u := WithTimestamp(ts)
		require.Equal(t, uint64(ts), u.Timestamp())
		seen[u] = struct{}{}
	}
	require.Len(t, seen, 100)
}

func TestTextAndJSON(t *testing.T) {
	u := MustParse(known)
	b, err := json.Marshal(map[string]ULID{"id": u})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"`+known+`"}`, string(b))

	var out map[string]ULID
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, u, out["id"])

	var bad ULID
	require.Error(t, bad.UnmarshalText([]byte("bad")))

	bin, err := u.MarshalBinary()
	require.NoError(t, err)
	var fromBin ULID
	require.NoError(t, fromBin.UnmarshalBinary(bin))
	require.Equal(t, u, fromBin)
	require.True(t, errors.Is(fromBin.UnmarshalBinary(bin[:3]), ErrLengthMismatch))
}

func TestCompareMatchesStringOrder(t *testing.T) {
	g := NewGenerator()
	ids, err := g.Batch(Permissive, 50)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		ids = append(ids, WithTimestamp(uint64(i)*1000))
	}
	sorted := append([]ULID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })
	for i := 1; i < len(sorted); i++ {
		require.LessOrEqual(t, sorted[i-1].String(), sorted[i].String())
	}
	require.True(t, Zero.IsZero())
}
