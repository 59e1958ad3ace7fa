package handler

import (
	"net/http"

	"poetiq/internal/service"
)

// QuestionnaireHandler serves the questionnaire reference data
type QuestionnaireHandler struct {
	questionnaireSvc *service.QuestionnaireService
}

// NewQuestionnaireHandler creates a new questionnaire handler
func NewQuestionnaireHandler(questionnaireSvc *service.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{questionnaireSvc: questionnaireSvc}
}

// Get handles GET /v1/questionnaire
func (h *QuestionnaireHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.questionnaireSvc.Questionnaire(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, view)
}
