package service

import (
	"context"
	"fmt"
	"log"

	"poetiq/internal/cache"
	"poetiq/internal/model"
	"poetiq/internal/quality"
	"poetiq/internal/repository"
)

// FacilityService computes baselines and poetiq ratings over the facility
// dataset. A scoring pass always normalizes against the baseline computed
// from the same dataset load, never a stale one.
type FacilityService struct {
	facilityRepo   repository.FacilityRepo
	baselineCache  cache.BaselineCache
	dataset        *cache.DatasetCache
	finesThreshold float64
}

// NewFacilityService creates a new facility service.
func NewFacilityService(
	facilityRepo repository.FacilityRepo,
	baselineCache cache.BaselineCache,
	dataset *cache.DatasetCache,
) *FacilityService {
	return &FacilityService{
		facilityRepo:   facilityRepo,
		baselineCache:  baselineCache,
		dataset:        dataset,
		finesThreshold: quality.FinesThreshold,
	}
}

// Baseline returns the pinned snapshot, computing and caching one from a
// fresh dataset load when none is pinned.
func (s *FacilityService) Baseline(ctx context.Context) (*model.BaselineSnapshot, error) {
	cached, err := s.baselineCache.Get(ctx)
	if err != nil {
		log.Printf("baseline cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	facilities, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := quality.ComputeBaseline(facilities)
	if err := s.baselineCache.Set(ctx, &snapshot); err != nil {
		log.Printf("baseline cache write failed: %v", err)
	}
	return &snapshot, nil
}

// RefreshBaseline drops the pinned snapshot and the in-process dataset, then
// recomputes both from the store.
func (s *FacilityService) RefreshBaseline(ctx context.Context) (*model.BaselineSnapshot, error) {
	s.dataset.Clear()
	if err := s.baselineCache.Invalidate(ctx); err != nil {
		return nil, fmt.Errorf("failed to invalidate baseline: %w", err)
	}
	return s.Baseline(ctx)
}

// ScoreAll rates the full dataset. The snapshot is computed from the very
// slice being scored, so ratings within one response are always comparable.
func (s *FacilityService) ScoreAll(ctx context.Context) (*model.FacilityScores, error) {
	facilities, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := quality.ComputeBaseline(facilities)
	if err := s.baselineCache.Set(ctx, &snapshot); err != nil {
		log.Printf("baseline cache write failed: %v", err)
	}

	return &model.FacilityScores{
		Baseline:   snapshot,
		Facilities: quality.ScoreAll(facilities, snapshot, s.finesThreshold),
	}, nil
}

func (s *FacilityService) loadDataset(ctx context.Context) ([]model.Facility, error) {
	if facilities, ok := s.dataset.Get(); ok {
		return facilities, nil
	}
	facilities, err := s.facilityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load facility dataset: %w", err)
	}
	s.dataset.Set(facilities)
	return facilities, nil
}
