package controllers

import (
	"net/http"

	"github.com/rzbill/ulidd/internal/runtime"
	idsvc "github.com/rzbill/ulidd/internal/services/ids"
)

// GeneralController serves health and instance stats.
type GeneralController struct {
	rt  *runtime.Runtime
	svc *idsvc.Service
}

// NewGeneralController creates a new general controller.
func NewGeneralController(rt *runtime.Runtime, svc *idsvc.Service) *GeneralController {
	return &GeneralController{rt: rt, svc: svc}
}

// RegisterRoutes registers general routes with the given mux.
func (c *GeneralController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/healthz", c.handleHealth)
	mux.HandleFunc("GET /v1/stats", c.handleStats)
}

// handleHealth returns 200 {"status":"ok"} when healthy, 503 otherwise.
func (c *GeneralController) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := c.rt.CheckHealth(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "not_serving")
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func (c *GeneralController) handleStats(w http.ResponseWriter, r *http.Request) {
	resp := statsResp{Storage: c.rt.Storage()}
	if c.rt.Ledger() != nil {
		st, err := c.svc.LedgerStats(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		resp.Ledger = &st
	}
	writeJSON(w, resp)
}
