package controllers

import (
	"net/http"

	"github.com/rzbill/ulidd/internal/runtime"
	idsvc "github.com/rzbill/ulidd/internal/services/ids"
)

// ControllerRegistry manages all HTTP controllers.
type ControllerRegistry struct {
	general *GeneralController
	ulids   *ULIDsController
	codec   *CodecController
	ledger  *LedgerController
}

// NewControllerRegistry initializes all controllers over one service.
func NewControllerRegistry(rt *runtime.Runtime, svc *idsvc.Service) *ControllerRegistry {
	return &ControllerRegistry{
		general: NewGeneralController(rt, svc),
		ulids:   NewULIDsController(svc),
		codec:   NewCodecController(svc),
		ledger:  NewLedgerController(svc),
	}
}

// RegisterAllRoutes registers all controller routes with the given mux.
func (r *ControllerRegistry) RegisterAllRoutes(mux *http.ServeMux) {
	r.general.RegisterRoutes(mux)
	r.ulids.RegisterRoutes(mux)
	r.codec.RegisterRoutes(mux)
	r.ledger.RegisterRoutes(mux)
}
