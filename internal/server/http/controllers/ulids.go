package controllers

import (
	"net/http"

	idsvc "github.com/rzbill/ulidd/internal/services/ids"
)

// ULIDsController serves generation, inspection and conversion endpoints.
type ULIDsController struct {
	svc *idsvc.Service
}

// NewULIDsController creates a new ULIDs controller.
func NewULIDsController(svc *idsvc.Service) *ULIDsController {
	return &ULIDsController{svc: svc}
}

// RegisterRoutes registers ULID routes with the given mux.
func (c *ULIDsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/ulids", c.handleGenerate)
	mux.HandleFunc("POST /v1/ulids/at", c.handleAt)
	mux.HandleFunc("GET /v1/ulids/{ulid}", c.handleInspect)
	mux.HandleFunc("GET /v1/ulids/{ulid}/uuid", c.handleToUUID)
	mux.HandleFunc("GET /v1/uuids/{uuid}/ulid", c.handleFromUUID)
	mux.HandleFunc("GET /v1/validate", c.handleValidate)
	mux.HandleFunc("GET /v1/normalize", c.handleNormalize)
}

func (c *ULIDsController) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	mode, err := c.svc.ResolveMode(req.Mode)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if req.Count < 0 {
		writeError(w, http.StatusBadRequest, "count must not be negative")
		return
	}
	ids, err := c.svc.Generate(r.Context(), mode, req.Count, idsvc.SourceHTTP)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := generateResp{ULIDs: make([]string, len(ids))}
	for i, id := range ids {
		resp.ULIDs[i] = id.String()
	}
	writeJSON(w, resp)
}

func (c *ULIDsController) handleAt(w http.ResponseWriter, r *http.Request) {
	var req atReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	writeJSON(w, ulidResp{ULID: c.svc.WithTimestamp(req.TimestampMs).String()})
}

func (c *ULIDsController) handleInspect(w http.ResponseWriter, r *http.Request) {
	d, err := c.svc.Inspect(r.PathValue("ulid"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, d)
}

func (c *ULIDsController) handleToUUID(w http.ResponseWriter, r *http.Request) {
	u, err := c.svc.ToUUID(r.PathValue("ulid"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, uuidResp{UUID: u})
}

func (c *ULIDsController) handleFromUUID(w http.ResponseWriter, r *http.Request) {
	s, err := c.svc.FromUUID(r.PathValue("uuid"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, ulidResp{ULID: s})
}

func (c *ULIDsController) handleValidate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, validResp{Valid: c.svc.Validate(r.URL.Query().Get("ulid"))})
}

func (c *ULIDsController) handleNormalize(w http.ResponseWriter, r *http.Request) {
	s, err := c.svc.Normalize(r.URL.Query().Get("ulid"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, ulidResp{ULID: s})
}
