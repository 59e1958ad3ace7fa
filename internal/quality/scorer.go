package quality

import (
	"math"

	"poetiq/internal/model"
)

// FinesThreshold is the dollar amount of federal fines a facility can carry
// before the fines term starts decaying.
const FinesThreshold = 100_000.0

// Term weights. The raw maximums sum to 5.0 (1.5 + 1.5 + 1.25 + 0.75) but
// the final rating is clamped anyway because rounding can push it over.
const (
	inspectionWeight = 1.5
	staffingWeight   = 0.75 // staffing ratio is capped at 2x, so max 1.5
	turnoverWeight   = 0.625
	finesWeight      = 0.75
)

// ScoreFacility blends a facility's regulatory, staffing, and financial
// signals into a poetiq rating in [0, 5], rounded to one decimal. Staffing
// and turnover are normalized against the baseline medians. A term is
// skipped (contributes 0, never an error) when its divisor is non-positive
// or when the facility metric is negative, the absent-data sentinel. No
// term can go negative, so only the upper bound needs clamping.
func ScoreFacility(f model.Facility, baseline model.BaselineSnapshot, finesThreshold float64) float64 {
	var score float64

	if f.HealthInspectionRating >= 0 {
		score += f.HealthInspectionRating / 5 * inspectionWeight
	}

	if baseline.MedianStaffingHours > 0 && f.StaffingHoursPerResidentDay >= 0 {
		ratio := f.StaffingHoursPerResidentDay / baseline.MedianStaffingHours
		score += math.Min(ratio, 2) * staffingWeight
	}

	// Inverse term: lower turnover than the median scores higher.
	if baseline.MedianStaffTurnover > 0 && f.StaffTurnoverPercent >= 0 {
		inverse := 2 - f.StaffTurnoverPercent/baseline.MedianStaffTurnover
		score += math.Min(math.Max(0, inverse), 2) * turnoverWeight
	}

	if f.FinesDollars >= 0 {
		if f.FinesDollars <= finesThreshold {
			score += finesWeight
		} else {
			decay := 1 - (f.FinesDollars-finesThreshold)/(finesThreshold*2)
			score += math.Max(0, decay) * finesWeight
		}
	}

	return math.Min(math.Round(score*10)/10, 5.0)
}

// ScoreAll rates every facility against the given snapshot. The caller is
// responsible for passing a snapshot computed from the same dataset load,
// otherwise ratings are not comparable.
func ScoreAll(facilities []model.Facility, baseline model.BaselineSnapshot, finesThreshold float64) []model.ScoredFacility {
	scored := make([]model.ScoredFacility, 0, len(facilities))
	for _, f := range facilities {
		scored = append(scored, model.ScoredFacility{
			Facility:     f,
			PoetiqRating: ScoreFacility(f, baseline, finesThreshold),
		})
	}
	return scored
}
