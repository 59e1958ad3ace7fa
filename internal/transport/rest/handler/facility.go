package handler

import (
	"net/http"

	"poetiq/internal/service"
)

// FacilityHandler handles facility scoring endpoints
type FacilityHandler struct {
	facilitySvc *service.FacilityService
}

// NewFacilityHandler creates a new facility handler
func NewFacilityHandler(facilitySvc *service.FacilityService) *FacilityHandler {
	return &FacilityHandler{facilitySvc: facilitySvc}
}

// Scores handles GET /v1/facilities/scores
func (h *FacilityHandler) Scores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.facilitySvc.ScoreAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, scores)
}

// Baseline handles GET /v1/facilities/baseline
func (h *FacilityHandler) Baseline(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.facilitySvc.Baseline(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// RefreshBaseline handles POST /v1/facilities/baseline/refresh
func (h *FacilityHandler) RefreshBaseline(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.facilitySvc.RefreshBaseline(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}
