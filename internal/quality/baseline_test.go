package quality

import (
	"testing"

	"poetiq/internal/model"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty returns zero", nil, 0},
		{"single", []float64{7}, 7},
		{"even length averages middles", []float64{2, 4}, 3},
		{"odd length", []float64{1, 2, 3}, 2},
		{"unsorted input", []float64{9, 1, 5}, 5},
		{"even unsorted", []float64{4, 1, 3, 2}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Median(tt.values); got != tt.want {
				t.Errorf("Median(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{9, 1, 5}
	Median(values)
	if values[0] != 9 || values[1] != 1 || values[2] != 5 {
		t.Fatalf("input mutated: %v", values)
	}
}

func TestComputeBaseline(t *testing.T) {
	facilities := []model.Facility{
		{CCN: "015001", StaffTurnoverPercent: 40, StaffingHoursPerResidentDay: 3.0},
		{CCN: "015002", StaffTurnoverPercent: 60, StaffingHoursPerResidentDay: 4.0},
		{CCN: "015003", StaffTurnoverPercent: 50, StaffingHoursPerResidentDay: 3.5},
		// Negative metrics are absent-data sentinels and must be dropped.
		{CCN: "015004", StaffTurnoverPercent: -1, StaffingHoursPerResidentDay: -1},
	}

	b := ComputeBaseline(facilities)
	if b.MedianStaffTurnover != 50 {
		t.Errorf("median turnover = %v, want 50", b.MedianStaffTurnover)
	}
	if b.MedianStaffingHours != 3.5 {
		t.Errorf("median staffing hours = %v, want 3.5", b.MedianStaffingHours)
	}
	if b.TurnoverSamples != 3 || b.StaffingSamples != 3 {
		t.Errorf("samples = %d/%d, want 3/3", b.TurnoverSamples, b.StaffingSamples)
	}
	if b.FacilityCount != 4 {
		t.Errorf("facility count = %d, want 4", b.FacilityCount)
	}
	if b.ComputedAt.IsZero() {
		t.Error("expected ComputedAt to be stamped")
	}
}

func TestComputeBaselineEmptyDataset(t *testing.T) {
	b := ComputeBaseline(nil)
	if b.MedianStaffTurnover != 0 || b.MedianStaffingHours != 0 {
		t.Errorf("expected zero medians for empty dataset, got %+v", b)
	}
	if b.TurnoverSamples != 0 || b.StaffingSamples != 0 || b.FacilityCount != 0 {
		t.Errorf("expected zero counts for empty dataset, got %+v", b)
	}
}
