package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"poetiq/internal/model"
	"poetiq/internal/service"
)

// AssessmentHandler handles onboarding session endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// StartSession handles POST /v1/sessions
func (h *AssessmentHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.assessmentSvc.StartSession(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, model.StartSessionResponse{SessionID: sessionID})
}

// SaveAnswers handles PUT /v1/sessions/{sessionId}/answers
func (h *AssessmentHandler) SaveAnswers(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req model.SaveAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "answers are required")
		return
	}

	view, err := h.assessmentSvc.SaveAnswers(r.Context(), sessionID, req.Answers)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// GetAssessment handles GET /v1/sessions/{sessionId}/assessment
func (h *AssessmentHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.assessmentSvc.GetAssessment(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if view == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, view)
}
