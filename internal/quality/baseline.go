package quality

import (
	"time"

	"github.com/montanaflynn/stats"

	"poetiq/internal/model"
)

// Median returns the statistical median of the values, averaging the two
// middle elements for even-length input. An empty slice yields 0; callers
// must check the snapshot's sample counts before reading a zero median as a
// real value. The input is not mutated.
func Median(values []float64) float64 {
	median, err := stats.Median(values)
	if err != nil {
		return 0
	}
	return median
}

// ComputeBaseline derives the national medians from one facility dataset
// load. Negative metric values are absent-data sentinels and are dropped
// before the median. The snapshot records where its numbers came from
// (sample counts, dataset size, timestamp) so that a scoring pass is always
// pinned to one identifiable baseline.
func ComputeBaseline(facilities []model.Facility) model.BaselineSnapshot {
	var turnover, hours []float64
	for _, f := range facilities {
		if f.StaffTurnoverPercent >= 0 {
			turnover = append(turnover, f.StaffTurnoverPercent)
		}
		if f.StaffingHoursPerResidentDay >= 0 {
			hours = append(hours, f.StaffingHoursPerResidentDay)
		}
	}

	return model.BaselineSnapshot{
		MedianStaffTurnover: Median(turnover),
		MedianStaffingHours: Median(hours),
		TurnoverSamples:     len(turnover),
		StaffingSamples:     len(hours),
		FacilityCount:       len(facilities),
		ComputedAt:          time.Now().UTC(),
	}
}
