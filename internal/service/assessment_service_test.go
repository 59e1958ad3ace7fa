package service

import (
	"context"
	"testing"

	"poetiq/internal/model"
)

func testReference() model.ReferenceData {
	return model.ReferenceData{
		Questions: []model.Question{
			{ID: model.QuestionLocation, Text: "Where is your loved one living right now?", Type: "location"},
			{ID: model.QuestionDependency, Text: "How much help do they need day to day?", Type: "dependency"},
			{ID: model.QuestionTimeSpent, Text: "How many hours a day do you spend on care?", Type: "time"},
			{ID: model.QuestionLegalPrep, Text: "Where do legal documents stand?", Type: "legal"},
			{ID: model.QuestionConflict, Text: "Does your family agree on care decisions?", Type: "conflict"},
		},
		Choices: []model.Choice{
			{QuestionID: model.QuestionTimeSpent, Value: "2hrs/day", DragWeight: 1},
			{QuestionID: model.QuestionLegalPrep, Value: "not yet signed", DragWeight: 4},
			{QuestionID: model.QuestionConflict, Value: "frequent disputes", DragWeight: 2},
		},
		Phases: []model.Phase{
			{ID: model.PhaseEarlyPlanning, Name: "Early Planning", BaseCognitiveDrag: 1},
			{ID: model.PhaseAcuteCrisis, Name: "Acute Crisis", BaseCognitiveDrag: 4},
			{ID: model.PhaseIntensiveHome, Name: "Intensive Home Care", BaseCognitiveDrag: 3},
			{ID: model.PhaseInstitutional, Name: "Institutional Management", BaseCognitiveDrag: 3, JourneyLabel: "Managing placement", NextStage: "End of life planning"},
			{ID: model.PhaseEndOfLife, Name: "End of Life", BaseCognitiveDrag: 5},
		},
		ChecklistItems: []model.ChecklistItem{
			{PhaseID: model.PhaseInstitutional, Text: "Sign a Lasting Power of Attorney (LPA)", Type: model.ChecklistItemTypeLegal},
			{PhaseID: model.PhaseInstitutional, Text: "Gather financial statements", Type: "organize finances"},
			{PhaseID: model.PhaseEarlyPlanning, Text: "Talk to your loved one about wishes", Type: "family meeting"},
		},
	}
}

func newTestAssessmentService() (*AssessmentService, *fakeResponseRepo, *fakeAssessmentCache) {
	repo := newFakeResponseRepo()
	assessmentCache := newFakeAssessmentCache()
	svc := NewAssessmentService(&fakeQuestionnaireRepo{ref: testReference()}, repo, assessmentCache)
	return svc, repo, assessmentCache
}

func TestSaveAnswersEndToEnd(t *testing.T) {
	svc, _, _ := newTestAssessmentService()
	ctx := context.Background()

	view, err := svc.SaveAnswers(ctx, "sess-1", map[int]string{
		model.QuestionLocation:   "nursing home",
		model.QuestionDependency: "total",
		model.QuestionTimeSpent:  "2hrs/day",
		model.QuestionLegalPrep:  "not yet signed",
		model.QuestionConflict:   "frequent disputes",
	})
	if err != nil {
		t.Fatal(err)
	}

	if view.Phase == nil || view.Phase.ID != model.PhaseInstitutional {
		t.Fatalf("expected phase 4, got %+v", view.Phase)
	}
	if view.Drag == nil {
		t.Fatal("expected drag breakdown")
	}
	// base 3 + time 1 + legal 4 + conflict 2
	if view.Drag.Total != 10 {
		t.Fatalf("drag total = %v, want 10", view.Drag.Total)
	}

	var poa *model.ChecklistItemStatus
	for i := range view.Checklist {
		if view.Checklist[i].Item.Type == model.ChecklistItemTypeLegal {
			poa = &view.Checklist[i]
		}
	}
	if poa == nil {
		t.Fatal("expected a POA checklist item for phase 4")
	}
	if poa.Status != model.StatusMissing {
		t.Fatalf("POA status = %q, want %q", poa.Status, model.StatusMissing)
	}
}

func TestSaveAnswersAllOrNothingDrag(t *testing.T) {
	svc, repo, _ := newTestAssessmentService()
	ctx := context.Background()

	// Phase derivable, but the conflict answer is still missing: no partial
	// drag score may be stored.
	view, err := svc.SaveAnswers(ctx, "sess-2", map[int]string{
		model.QuestionLocation:   "at home",
		model.QuestionDependency: "significant assistance",
		model.QuestionTimeSpent:  "2hrs/day",
		model.QuestionLegalPrep:  "not yet signed",
	})
	if err != nil {
		t.Fatal(err)
	}
	if view.Phase == nil || view.Phase.ID != model.PhaseIntensiveHome {
		t.Fatalf("expected phase 3, got %+v", view.Phase)
	}
	if view.Drag != nil {
		t.Fatalf("expected no drag with an answer missing, got %+v", view.Drag)
	}
	stored := repo.responses["sess-2"]
	if stored.DragScore != nil || stored.Drag != nil {
		t.Fatalf("partial drag persisted: %+v", stored)
	}

	// The missing answer arrives on the next step; drag appears.
	view, err = svc.SaveAnswers(ctx, "sess-2", map[int]string{
		model.QuestionConflict: "frequent disputes",
	})
	if err != nil {
		t.Fatal(err)
	}
	if view.Drag == nil {
		t.Fatal("expected drag once all answers are present")
	}
	if view.Drag.Total != 10 { // base 3 + 1 + 4 + 2
		t.Fatalf("drag total = %v, want 10", view.Drag.Total)
	}
}

func TestSaveAnswersIdempotentUpsert(t *testing.T) {
	svc, repo, _ := newTestAssessmentService()
	ctx := context.Background()

	answers := map[int]string{
		model.QuestionLocation:   "at home",
		model.QuestionDependency: "independent",
	}
	if _, err := svc.SaveAnswers(ctx, "sess-3", answers); err != nil {
		t.Fatal(err)
	}
	first := repo.responses["sess-3"]

	if _, err := svc.SaveAnswers(ctx, "sess-3", answers); err != nil {
		t.Fatal(err)
	}
	second := repo.responses["sess-3"]

	if len(repo.responses) != 1 {
		t.Fatalf("expected one record per session, got %d", len(repo.responses))
	}
	if second.Phase == nil || *second.Phase != *first.Phase {
		t.Fatalf("repeated save changed the derived phase: %+v vs %+v", first.Phase, second.Phase)
	}
}

func TestSaveAnswersInvalidatesCache(t *testing.T) {
	svc, _, assessmentCache := newTestAssessmentService()
	ctx := context.Background()

	if _, err := svc.SaveAnswers(ctx, "sess-4", map[int]string{model.QuestionLocation: "at home"}); err != nil {
		t.Fatal(err)
	}
	if assessmentCache.deletes != 1 {
		t.Fatalf("expected one cache invalidation, got %d", assessmentCache.deletes)
	}
}

func TestGetAssessmentUnknownSession(t *testing.T) {
	svc, _, _ := newTestAssessmentService()

	view, err := svc.GetAssessment(context.Background(), "no-such-session")
	if err != nil {
		t.Fatal(err)
	}
	if view != nil {
		t.Fatalf("expected nil for unknown session, got %+v", view)
	}
}

func TestGetAssessmentServesCachedView(t *testing.T) {
	svc, repo, _ := newTestAssessmentService()
	ctx := context.Background()

	if _, err := svc.SaveAnswers(ctx, "sess-5", map[int]string{model.QuestionLocation: "hospice"}); err != nil {
		t.Fatal(err)
	}
	// First read populates the cache, second one must not need the store.
	if _, err := svc.GetAssessment(ctx, "sess-5"); err != nil {
		t.Fatal(err)
	}
	delete(repo.responses, "sess-5")
	view, err := svc.GetAssessment(ctx, "sess-5")
	if err != nil {
		t.Fatal(err)
	}
	if view == nil {
		t.Fatal("expected the cached view to be served")
	}
}

func TestStartSession(t *testing.T) {
	svc, repo, _ := newTestAssessmentService()

	id, err := svc.StartSession(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("expected a session id")
	}
	if _, ok := repo.responses[id]; !ok {
		t.Fatal("expected an empty response record for the new session")
	}
}
