package controllers

import (
	"net/http"

	"github.com/rzbill/ulidd/internal/ledger"
	idsvc "github.com/rzbill/ulidd/internal/services/ids"
)

// defaultLedgerLimit caps GET /v1/ledger when no limit is given.
const defaultLedgerLimit = 100

// LedgerController serves reads of the issuance ledger.
type LedgerController struct {
	svc *idsvc.Service
}

// NewLedgerController creates a new ledger controller.
func NewLedgerController(svc *idsvc.Service) *LedgerController {
	return &LedgerController{svc: svc}
}

// RegisterRoutes registers ledger routes with the given mux.
func (c *LedgerController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/ledger", c.handleList)
	mux.HandleFunc("GET /v1/ledger/{ulid}", c.handleGet)
}

// handleList supports from/to (ms or RFC3339), filter (CEL), limit and
// reverse=true.
func (c *LedgerController) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := ledger.Query{
		FromMs:  parseTimestamp(q.Get("from")),
		ToMs:    parseTimestamp(q.Get("to")),
		Filter:  q.Get("filter"),
		Limit:   parseLimit(q.Get("limit")),
		Reverse: parseBool(q.Get("reverse")),
	}
	if query.Limit == 0 {
		query.Limit = defaultLedgerLimit
	}
	entries, err := c.svc.ListIssued(r.Context(), query)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []ledger.Entry{}
	}
	writeJSON(w, ledgerResp{Entries: entries})
}

func (c *LedgerController) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := c.svc.LookupIssued(r.PathValue("ulid"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, rec)
}
