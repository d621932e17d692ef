package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"lukechampine.com/uint128"

	cfgpkg "github.com/rzbill/ulidd/internal/config"
	"github.com/rzbill/ulidd/internal/runtime"
	pebblestore "github.com/rzbill/ulidd/internal/storage/pebble"
	logpkg "github.com/rzbill/ulidd/pkg/log"
	"github.com/rzbill/ulidd/pkg/ulid"
)

type fakeClock struct{ ms int64 }

func (c *fakeClock) now() int64 { return c.ms }

func newTestServer(t *testing.T, withLedger bool, gen *ulid.Generator) *Server {
	t.Helper()
	cfg := cfgpkg.Default()
	cfg.Generator.MaxBatch = 5
	cfg.Ledger.Enabled = withLedger
	if gen == nil {
		gen = ulid.NewGenerator()
	}
	rt, err := runtime.Open(runtime.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeNever, Config: cfg, Generator: gen})
	if err != nil {
		t.Fatalf("rt open: %v", err)
	}
	t.Cleanup(func() { _ = rt.Close() })
	logger, _ := logpkg.ApplyConfig(&logpkg.Config{Level: "error", Format: "text"})
	return New(rt, logger)
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.srv.Handler.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer(t, true, nil)
	w := do(t, s, http.MethodGet, "/v1/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	w = do(t, s, http.MethodOptions, "/v1/ulids", "")
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("cors preflight: %d %v", w.Code, w.Header())
	}
}

func TestGenerateHandler(t *testing.T) {
	s := newTestServer(t, false, nil)
	w := do(t, s, http.MethodPost, "/v1/ulids", `{"mode":"strict","count":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		ULIDs []string `json:"ulids"`
	}
	decode(t, w, &resp)
	if len(resp.ULIDs) != 3 || !(resp.ULIDs[0] < resp.ULIDs[1] && resp.ULIDs[1] < resp.ULIDs[2]) {
		t.Fatalf("unexpected ulids: %v", resp.ULIDs)
	}

	if w := do(t, s, http.MethodPost, "/v1/ulids", ""); w.Code != http.StatusOK {
		t.Fatalf("empty body should default: %d", w.Code)
	}
	if w := do(t, s, http.MethodPost, "/v1/ulids", `{"count":6}`); w.Code != http.StatusBadRequest {
		t.Fatalf("oversized batch: %d", w.Code)
	}
	if w := do(t, s, http.MethodPost, "/v1/ulids", `{"mode":"eager"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad mode: %d", w.Code)
	}
	if w := do(t, s, http.MethodPost, "/v1/ulids", `{"bogus":1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown field: %d", w.Code)
	}
	if w := do(t, s, http.MethodGet, "/v1/ulids", ""); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET on collection: %d", w.Code)
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	clock := &fakeClock{ms: 50_000}
	gen := ulid.NewGenerator(
		ulid.WithClock(clock.now),
		ulid.WithRandom(func() uint128.Uint128 { return ulid.MaxRandom }),
	)
	s := newTestServer(t, false, gen)
	if w := do(t, s, http.MethodPost, "/v1/ulids", `{"mode":"strict"}`); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("overflow: %d", w.Code)
	}
	clock.ms = 40_000
	if w := do(t, s, http.MethodPost, "/v1/ulids", `{"mode":"strict"}`); w.Code != http.StatusInternalServerError {
		t.Fatalf("regression: %d", w.Code)
	}
	if w := do(t, s, http.MethodPost, "/v1/ulids", `{"mode":"permissive"}`); w.Code != http.StatusOK {
		t.Fatalf("permissive regression: %d", w.Code)
	}
}

func TestInspectAndConvert(t *testing.T) {
	s := newTestServer(t, false, nil)
	w := do(t, s, http.MethodGet, "/v1/ulids/01ARZ3NDEKTSV4RRFFQ69G5FAV", "")
	if w.Code != http.StatusOK {
		t.Fatalf("inspect: %d", w.Code)
	}
	var d struct {
		Timestamp uint64 `json:"timestamp_ms"`
		Random    string `json:"random"`
		UUID      string `json:"uuid"`
	}
	decode(t, w, &d)
	if d.Timestamp != 1469922850259 || d.Random != "1012768647078601740696923" {
		t.Fatalf("inspect body: %+v", d)
	}

	if w := do(t, s, http.MethodGet, "/v1/ulids/01ARZ3NDEKTSV4RRFFQ69G5FAI", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid char: %d", w.Code)
	}

	w = do(t, s, http.MethodGet, "/v1/ulids/01ARZ3NDEKTSV4RRFFQ69G5FAV/uuid", "")
	var u struct{ UUID string }
	decode(t, w, &u)
	if u.UUID != "01563e3a-b5d3-d676-4c61-efb99302bd5b" {
		t.Fatalf("to uuid: %s", u.UUID)
	}

	w = do(t, s, http.MethodGet, "/v1/uuids/"+u.UUID+"/ulid", "")
	var back struct{ ULID string }
	decode(t, w, &back)
	if back.ULID != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Fatalf("from uuid: %s", back.ULID)
	}
	if w := do(t, s, http.MethodGet, "/v1/uuids/xyz/ulid", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad uuid: %d", w.Code)
	}

	w = do(t, s, http.MethodGet, "/v1/validate?ulid=01ARZ3NDEKTSV4RRFFQ69G5FAO", "")
	var v struct{ Valid bool }
	decode(t, w, &v)
	if v.Valid {
		t.Fatalf("O must be rejected")
	}

	w = do(t, s, http.MethodGet, "/v1/normalize?ulid=01arz3ndektsv4rrffq69g5fav", "")
	decode(t, w, &back)
	if back.ULID != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Fatalf("normalize: %s", back.ULID)
	}

	w = do(t, s, http.MethodPost, "/v1/ulids/at", `{"timestamp_ms":1469922850259}`)
	decode(t, w, &back)
	if !strings.HasPrefix(back.ULID, "01ARZ3NDEK") {
		t.Fatalf("at: %s", back.ULID)
	}
}

func TestBase32Handlers(t *testing.T) {
	s := newTestServer(t, false, nil)
	w := do(t, s, http.MethodPost, "/v1/base32/encode", `{"value":"1024"}`)
	var enc struct{ Text string }
	decode(t, w, &enc)
	if enc.Text != strings.Repeat("0", 23)+"100" {
		t.Fatalf("encode: %s", enc.Text)
	}
	w = do(t, s, http.MethodPost, "/v1/base32/decode", `{"text":"100"}`)
	var dec struct{ Value string }
	decode(t, w, &dec)
	if dec.Value != "1024" {
		t.Fatalf("decode: %s", dec.Value)
	}
	if w := do(t, s, http.MethodPost, "/v1/base32/encode", `{"value":"ten"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad decimal: %d", w.Code)
	}
	if w := do(t, s, http.MethodPost, "/v1/base32/decode", `{"text":"LOL"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad text: %d", w.Code)
	}
}

func TestLedgerHandlers(t *testing.T) {
	s := newTestServer(t, false, nil)
	if w := do(t, s, http.MethodGet, "/v1/ledger", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("disabled ledger: %d", w.Code)
	}

	s = newTestServer(t, true, nil)
	w := do(t, s, http.MethodPost, "/v1/ulids", `{"mode":"permissive","count":4}`)
	var gen struct {
		ULIDs []string `json:"ulids"`
	}
	decode(t, w, &gen)

	w = do(t, s, http.MethodGet, "/v1/ledger?limit=2&reverse=true&filter="+url.QueryEscape(`mode == "permissive"`), "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: %d %s", w.Code, w.Body.String())
	}
	var list struct {
		Entries []struct {
			ID     string `json:"id"`
			Mode   string `json:"mode"`
			Source string `json:"source"`
		} `json:"entries"`
	}
	decode(t, w, &list)
	if len(list.Entries) != 2 || list.Entries[0].ID != gen.ULIDs[3] || list.Entries[0].Source != "http" {
		t.Fatalf("list body: %+v", list)
	}

	w = do(t, s, http.MethodGet, "/v1/ledger/"+gen.ULIDs[0], "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: %d", w.Code)
	}
	if w := do(t, s, http.MethodGet, "/v1/ledger/01ARZ3NDEKTSV4RRFFQ69G5FAV", ""); w.Code != http.StatusNotFound {
		t.Fatalf("missing: %d", w.Code)
	}
	if w := do(t, s, http.MethodGet, "/v1/ledger?filter="+url.QueryEscape("mode =="), ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad filter: %d", w.Code)
	}

	w = do(t, s, http.MethodGet, "/v1/stats", "")
	var stats struct {
		Ledger struct {
			Count uint64 `json:"count"`
		} `json:"ledger"`
		Storage struct {
			Commits uint64 `json:"commits"`
		} `json:"storage"`
	}
	decode(t, w, &stats)
	if stats.Ledger.Count != 4 || stats.Storage.Commits == 0 {
		t.Fatalf("stats: %+v", stats)
	}
}
