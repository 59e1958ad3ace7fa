package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"poetiq/internal/assessment"
	"poetiq/internal/cache"
	"poetiq/internal/model"
	"poetiq/internal/repository"
)

// AssessmentService owns the onboarding session lifecycle: answer upserts,
// phase classification, drag aggregation, and the checklist view.
type AssessmentService struct {
	questionnaireRepo repository.QuestionnaireRepo
	responseRepo      repository.ResponseRepo
	assessmentCache   cache.AssessmentCache
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(
	questionnaireRepo repository.QuestionnaireRepo,
	responseRepo repository.ResponseRepo,
	assessmentCache cache.AssessmentCache,
) *AssessmentService {
	return &AssessmentService{
		questionnaireRepo: questionnaireRepo,
		responseRepo:      responseRepo,
		assessmentCache:   assessmentCache,
	}
}

// StartSession mints a session id and creates its empty response record.
func (s *AssessmentService) StartSession(ctx context.Context) (string, error) {
	now := time.Now().UTC()
	resp := &model.OnboardingResponse{
		SessionID: uuid.NewString(),
		Answers:   map[int]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.responseRepo.Upsert(ctx, resp); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return resp.SessionID, nil
}

// SaveAnswers merge-upserts answers into the session's response and
// re-derives whatever the stored answers now support. Phase needs location
// and dependency; drag needs the phase plus all three weighted answers, and
// a partial drag score is never computed or persisted.
func (s *AssessmentService) SaveAnswers(ctx context.Context, sessionID string, answers map[int]string) (*model.Assessment, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	resp, err := s.responseRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load response: %w", err)
	}
	now := time.Now().UTC()
	if resp == nil {
		resp = &model.OnboardingResponse{
			SessionID: sessionID,
			Answers:   map[int]string{},
			CreatedAt: now,
		}
	}
	if resp.Answers == nil {
		resp.Answers = map[int]string{}
	}
	for questionID, value := range answers {
		resp.Answers[questionID] = value
	}
	resp.UpdatedAt = now

	if err := s.derive(ctx, resp); err != nil {
		return nil, err
	}
	if err := s.responseRepo.Upsert(ctx, resp); err != nil {
		return nil, fmt.Errorf("failed to save response: %w", err)
	}
	if err := s.assessmentCache.Delete(ctx, sessionID); err != nil {
		log.Printf("failed to invalidate assessment cache for %s: %v", sessionID, err)
	}

	return s.buildAssessment(ctx, resp)
}

// GetAssessment returns the derived view for a session, nil when the session
// does not exist.
func (s *AssessmentService) GetAssessment(ctx context.Context, sessionID string) (*model.Assessment, error) {
	cached, err := s.assessmentCache.Get(ctx, sessionID)
	if err != nil {
		log.Printf("assessment cache read failed for %s: %v", sessionID, err)
	}
	if cached != nil {
		return cached, nil
	}

	resp, err := s.responseRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load response: %w", err)
	}
	if resp == nil {
		return nil, nil
	}
	return s.buildAssessment(ctx, resp)
}

// derive recomputes the phase and drag fields from the stored answers.
func (s *AssessmentService) derive(ctx context.Context, resp *model.OnboardingResponse) error {
	resp.Phase = nil
	resp.Drag = nil
	resp.DragScore = nil

	if !resp.HasAnswers(model.QuestionLocation, model.QuestionDependency) {
		return nil
	}
	phase := assessment.ClassifyPhase(resp.Answer(model.QuestionLocation), resp.Answer(model.QuestionDependency))
	resp.Phase = &phase

	// All-or-nothing: skip aggregation entirely while any weighted answer is
	// missing instead of reporting a misleadingly low score.
	if !resp.HasAnswers(model.QuestionTimeSpent, model.QuestionLegalPrep, model.QuestionConflict) {
		return nil
	}

	phases, err := s.questionnaireRepo.Phases(ctx)
	if err != nil {
		return fmt.Errorf("failed to load phases: %w", err)
	}
	choices, err := s.questionnaireRepo.Choices(ctx)
	if err != nil {
		return fmt.Errorf("failed to load choices: %w", err)
	}

	drag := assessment.AggregateDrag(
		phase,
		resp.Answer(model.QuestionTimeSpent),
		resp.Answer(model.QuestionLegalPrep),
		resp.Answer(model.QuestionConflict),
		assessment.NewBaseDragTable(phases),
		assessment.NewWeightTable(choices),
	)
	resp.Drag = &drag
	resp.DragScore = &drag.Total
	return nil
}

// buildAssessment assembles the caregiver-facing view and caches it.
func (s *AssessmentService) buildAssessment(ctx context.Context, resp *model.OnboardingResponse) (*model.Assessment, error) {
	view := &model.Assessment{
		SessionID: resp.SessionID,
		Answers:   resp.Answers,
		Drag:      resp.Drag,
		UpdatedAt: resp.UpdatedAt,
	}

	if resp.Phase != nil {
		phases, err := s.questionnaireRepo.Phases(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load phases: %w", err)
		}
		for i := range phases {
			if phases[i].ID == *resp.Phase {
				view.Phase = &phases[i]
				break
			}
		}

		items, err := s.questionnaireRepo.ChecklistItems(ctx, *resp.Phase)
		if err != nil {
			return nil, fmt.Errorf("failed to load checklist items: %w", err)
		}
		for _, item := range items {
			view.Checklist = append(view.Checklist, model.ChecklistItemStatus{
				Item:   item,
				Status: assessment.ResolveChecklistStatus(item, resp.Answers),
			})
		}
	}

	if err := s.assessmentCache.Set(ctx, view); err != nil {
		log.Printf("assessment cache write failed for %s: %v", resp.SessionID, err)
	}
	return view, nil
}
