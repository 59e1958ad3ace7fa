package model

import "time"

// DragBreakdown is the additive composition of a cognitive drag score. All
// four terms are non-negative and Total is their sum, uncapped.
type DragBreakdown struct {
	Base          float64 `json:"base" bson:"base"`
	TimeFriction  float64 `json:"timeFriction" bson:"timeFriction"`
	LegalExposure float64 `json:"legalExposure" bson:"legalExposure"`
	Conflict      float64 `json:"conflict" bson:"conflict"`
	Total         float64 `json:"total" bson:"total"`
}

// OnboardingResponse is the per-session questionnaire record. Answers are
// keyed by question id. Phase and the drag fields are derived; both stay nil
// until enough answers are present to compute them.
type OnboardingResponse struct {
	SessionID string         `json:"sessionId" bson:"_id"`
	Answers   map[int]string `json:"answers" bson:"answers"`
	Phase     *PhaseID       `json:"phase,omitempty" bson:"phase,omitempty"`
	DragScore *float64       `json:"dragScore,omitempty" bson:"dragScore,omitempty"`
	Drag      *DragBreakdown `json:"drag,omitempty" bson:"drag,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// Answer returns the stored answer for a question, empty when unanswered.
func (r *OnboardingResponse) Answer(questionID int) string {
	return r.Answers[questionID]
}

// HasAnswers reports whether every given question has a non-empty answer.
func (r *OnboardingResponse) HasAnswers(questionIDs ...int) bool {
	for _, id := range questionIDs {
		if r.Answers[id] == "" {
			return false
		}
	}
	return true
}

// Assessment is the caregiver-facing view of a session: the stored answers
// plus everything derived from them.
type Assessment struct {
	SessionID string                `json:"sessionId"`
	Answers   map[int]string        `json:"answers"`
	Phase     *Phase                `json:"phase,omitempty"`
	Drag      *DragBreakdown        `json:"drag,omitempty"`
	Checklist []ChecklistItemStatus `json:"checklist,omitempty"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// SaveAnswersRequest is the body of PUT /v1/sessions/{sessionId}/answers.
type SaveAnswersRequest struct {
	Answers map[int]string `json:"answers"`
}

// StartSessionResponse is the body returned by POST /v1/sessions.
type StartSessionResponse struct {
	SessionID string `json:"sessionId"`
}
