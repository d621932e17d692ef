package controllers

import (
	"net/http"

	idsvc "github.com/rzbill/ulidd/internal/services/ids"
)

// CodecController exposes the raw Base32 codec over decimal integers.
type CodecController struct {
	svc *idsvc.Service
}

// NewCodecController creates a new codec controller.
func NewCodecController(svc *idsvc.Service) *CodecController {
	return &CodecController{svc: svc}
}

// RegisterRoutes registers codec routes with the given mux.
func (c *CodecController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/base32/encode", c.handleEncode)
	mux.HandleFunc("POST /v1/base32/decode", c.handleDecode)
}

func (c *CodecController) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req encodeReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	text, err := c.svc.EncodeBase32(req.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, encodeResp{Text: text})
}

func (c *CodecController) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req decodeReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	v, err := c.svc.DecodeBase32(req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, decodeResp{Value: v})
}
