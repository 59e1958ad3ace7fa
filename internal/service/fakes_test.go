package service

import (
	"context"

	"poetiq/internal/model"
)

// In-memory fakes for the repository and cache interfaces.

type fakeQuestionnaireRepo struct {
	ref model.ReferenceData
}

func (f *fakeQuestionnaireRepo) Questions(ctx context.Context) ([]model.Question, error) {
	return f.ref.Questions, nil
}

func (f *fakeQuestionnaireRepo) Choices(ctx context.Context) ([]model.Choice, error) {
	return f.ref.Choices, nil
}

func (f *fakeQuestionnaireRepo) Phases(ctx context.Context) ([]model.Phase, error) {
	return f.ref.Phases, nil
}

func (f *fakeQuestionnaireRepo) ChecklistItems(ctx context.Context, phaseID model.PhaseID) ([]model.ChecklistItem, error) {
	var items []model.ChecklistItem
	for _, item := range f.ref.ChecklistItems {
		if item.PhaseID == phaseID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeQuestionnaireRepo) SeedReference(ctx context.Context, ref *model.ReferenceData) error {
	f.ref = *ref
	return nil
}

type fakeResponseRepo struct {
	responses map[string]model.OnboardingResponse
	upserts   int
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{responses: map[string]model.OnboardingResponse{}}
}

func (f *fakeResponseRepo) Upsert(ctx context.Context, resp *model.OnboardingResponse) error {
	f.responses[resp.SessionID] = *resp
	f.upserts++
	return nil
}

func (f *fakeResponseRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.OnboardingResponse, error) {
	resp, ok := f.responses[sessionID]
	if !ok {
		return nil, nil
	}
	return &resp, nil
}

type fakeAssessmentCache struct {
	views   map[string]model.Assessment
	deletes int
}

func newFakeAssessmentCache() *fakeAssessmentCache {
	return &fakeAssessmentCache{views: map[string]model.Assessment{}}
}

func (f *fakeAssessmentCache) Get(ctx context.Context, sessionID string) (*model.Assessment, error) {
	view, ok := f.views[sessionID]
	if !ok {
		return nil, nil
	}
	return &view, nil
}

func (f *fakeAssessmentCache) Set(ctx context.Context, assessment *model.Assessment) error {
	f.views[assessment.SessionID] = *assessment
	return nil
}

func (f *fakeAssessmentCache) Delete(ctx context.Context, sessionID string) error {
	delete(f.views, sessionID)
	f.deletes++
	return nil
}

type fakeFacilityRepo struct {
	facilities []model.Facility
	lists      int
}

func (f *fakeFacilityRepo) List(ctx context.Context) ([]model.Facility, error) {
	f.lists++
	return f.facilities, nil
}

func (f *fakeFacilityRepo) ReplaceAll(ctx context.Context, facilities []model.Facility) error {
	f.facilities = facilities
	return nil
}

type fakeBaselineCache struct {
	snapshot *model.BaselineSnapshot
}

func (f *fakeBaselineCache) Get(ctx context.Context) (*model.BaselineSnapshot, error) {
	return f.snapshot, nil
}

func (f *fakeBaselineCache) Set(ctx context.Context, snapshot *model.BaselineSnapshot) error {
	f.snapshot = snapshot
	return nil
}

func (f *fakeBaselineCache) Invalidate(ctx context.Context) error {
	f.snapshot = nil
	return nil
}
