package service

import (
	"context"
	"fmt"

	"poetiq/internal/model"
	"poetiq/internal/repository"
)

// QuestionnaireView is the reference data a client needs to render the
// onboarding flow.
type QuestionnaireView struct {
	Questions []model.Question `json:"questions"`
	Choices   []model.Choice   `json:"choices"`
	Phases    []model.Phase    `json:"phases"`
}

// QuestionnaireService exposes the read-only questionnaire reference data.
type QuestionnaireService struct {
	repo repository.QuestionnaireRepo
}

// NewQuestionnaireService creates a new questionnaire service.
func NewQuestionnaireService(repo repository.QuestionnaireRepo) *QuestionnaireService {
	return &QuestionnaireService{repo: repo}
}

// Questionnaire returns the full reference set for rendering.
func (s *QuestionnaireService) Questionnaire(ctx context.Context) (*QuestionnaireView, error) {
	questions, err := s.repo.Questions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	choices, err := s.repo.Choices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load choices: %w", err)
	}
	phases, err := s.repo.Phases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load phases: %w", err)
	}
	return &QuestionnaireView{
		Questions: questions,
		Choices:   choices,
		Phases:    phases,
	}, nil
}
