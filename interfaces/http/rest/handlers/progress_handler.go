package handlers

import (
	"net/http"

	"github.com/Anirach/ncd-health-plus/application/ports"
	appservices "github.com/Anirach/ncd-health-plus/application/services"
	"github.com/Anirach/ncd-health-plus/domain/services"
	"github.com/Anirach/ncd-health-plus/pkg/common"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// ProgressRequest is the body of POST /progress
type ProgressRequest struct {
	Visits []services.LabVisit `json:"visits"`
}

// ProgressHandler analyzes risk over a series of visits
type ProgressHandler struct {
	service  *appservices.RiskService
	models   ports.ModelProvider
	errs     *pkgerrors.ErrorHandler
	maxBytes int64
	strict   bool
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(service *appservices.RiskService, models ports.ModelProvider, errs *pkgerrors.ErrorHandler, maxBytes int64, strict bool) *ProgressHandler {
	return &ProgressHandler{service: service, models: models, errs: errs, maxBytes: bodyLimit(maxBytes), strict: strict}
}

// Analyze handles POST /progress
func (h *ProgressHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if err := common.ParseJSONBody(r, &req, h.maxBytes); err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	if h.strict {
		for i, v := range req.Visits {
			if err := checkStrict(h.models, v.Profile, nil); err != nil {
				h.errs.Handle(w, r, pkgerrors.Wrapf(err, "visit %d", i))
				return
			}
		}
	}
	report, err := h.service.AnalyzeProgress(r.Context(), req.Visits)
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	respond(w, r, h.models, http.StatusOK, report, nil)
}
