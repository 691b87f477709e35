package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Anirach/ncd-health-plus/application/ports"
	appservices "github.com/Anirach/ncd-health-plus/application/services"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

// PatientHandler serves the built-in demo patients
type PatientHandler struct {
	service *appservices.RiskService
	models  ports.ModelProvider
	errs    *pkgerrors.ErrorHandler
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(service *appservices.RiskService, models ports.ModelProvider, errs *pkgerrors.ErrorHandler) *PatientHandler {
	return &PatientHandler{service: service, models: models, errs: errs}
}

// ListDemo handles GET /patients/demo
func (h *PatientHandler) ListDemo(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.models, http.StatusOK, h.service.DemoPatients(), nil)
}

// GetDemo handles GET /patients/demo/{patientID}
func (h *PatientHandler) GetDemo(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.DemoPatient(chi.URLParam(r, "patientID"))
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	respond(w, r, h.models, http.StatusOK, p, nil)
}

// AssessDemo handles GET /patients/demo/{patientID}/risks?ci=
func (h *PatientHandler) AssessDemo(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.DemoPatient(chi.URLParam(r, "patientID"))
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	assessment, err := h.service.AssessRisk(r.Context(), p, wantCI(r))
	if err != nil {
		h.errs.Handle(w, r, err)
		return
	}
	respond(w, r, h.models, http.StatusOK, assessment, nil)
}
