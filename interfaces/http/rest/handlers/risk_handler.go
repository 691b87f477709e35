package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Anirach/ncd-health-plus/application/ports"
	appservices "github.com/Anirach/ncd-health-plus/application/services"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	"github.com/Anirach/ncd-health-plus/domain/services"
	"github.com/Anirach/ncd-health-plus/pkg/common"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// SimulationRequest is the body of POST /simulations. At least one of
// Interventions and Plan must be set.
type SimulationRequest struct {
	Profile       vo.PatientProfile          `json:"profile"`
	Interventions services.Interventions      `json:"interventions,omitempty"`
	Plan          *services.InterventionPlan `json:"plan,omitempty"`
}

// RiskHandler handles scoring and what-if requests
type RiskHandler struct {
	service  *appservices.RiskService
	models   ports.ModelProvider
	errs     *pkgerrors.ErrorHandler
	maxBytes int64
	strict   bool
	logger   *zap.Logger
}

// NewRiskHandler creates a new risk handler. With strict set, profiles and
// interventions naming nodes outside the active model are rejected.
func NewRiskHandler(service *appservices.RiskService, models ports.ModelProvider, errs *pkgerrors.ErrorHandler, maxBytes int64, strict bool, logger *zap.Logger) *RiskHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RiskHandler{
		service:  service,
		models:   models,
		errs:     errs,
		maxBytes: bodyLimit(maxBytes),
		strict:   strict,
		logger:   logger,
	}
}

// AssessRisk handles POST /risks
func (h *RiskHandler) AssessRisk(w http.ResponseWriter, r *http.Request) {
	var profile vo.PatientProfile
	if err := common.ParseJSONBody(r, &profile, h.maxBytes); err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	if h.strict {
		if err := checkStrict(h.models, profile, nil); err != nil {
			h.errs.Handle(w, r, err)
			return
		}
	}

	assessment, err := h.service.AssessRisk(r.Context(), profile, wantCI(r))
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	respond(w, r, h.models, http.StatusOK, assessment, nil)
}

// Simulate handles POST /simulations
func (h *RiskHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulationRequest
	if err := common.ParseJSONBody(r, &req, h.maxBytes); err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	if h.strict {
		if err := checkStrict(h.models, req.Profile, req.Interventions); err != nil {
			h.errs.Handle(w, r, err)
			return
		}
	}

	var (
		sim *appservices.Simulation
		err error
	)
	switch {
	case req.Plan != nil && len(req.Interventions) > 0:
		sim, err = h.service.SimulateCombined(r.Context(), req.Profile, *req.Plan, req.Interventions)
	case req.Plan != nil:
		sim, err = h.service.SimulatePlan(r.Context(), req.Profile, *req.Plan)
	case len(req.Interventions) > 0:
		sim, err = h.service.Simulate(r.Context(), req.Profile, req.Interventions)
	default:
		err = pkgerrors.NewValidationError("interventions or plan is required")
	}
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}

	h.logger.Debug("Simulation completed",
		zap.String("simulationID", sim.ID),
		zap.Int("activatedEdges", len(sim.Result.ActivatedEdges)),
	)
	respond(w, r, h.models, http.StatusOK, sim, nil)
}
