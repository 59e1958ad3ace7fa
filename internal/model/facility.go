package model

import "time"

// Facility is one nursing-home provider record from the loaded dataset.
// Metrics are non-negative; a negative value is an absent-data sentinel,
// filtered out of baseline computation and skipped by the scorer.
type Facility struct {
	CCN                         string  `json:"ccn" bson:"_id"`
	Name                        string  `json:"name" bson:"name"`
	State                       string  `json:"state" bson:"state"`
	HealthInspectionRating      float64 `json:"healthInspectionRating" bson:"healthInspectionRating"`
	StaffingHoursPerResidentDay float64 `json:"staffingHoursPerResidentDay" bson:"staffingHoursPerResidentDay"`
	StaffTurnoverPercent        float64 `json:"staffTurnoverPercent" bson:"staffTurnoverPercent"`
	FinesDollars                float64 `json:"finesDollars" bson:"finesDollars"`
}

// BaselineSnapshot holds the national medians a scoring pass normalizes
// against, pinned to the dataset it was computed from. The sample counts make
// "median is 0 because there was no data" explicit instead of ambiguous.
type BaselineSnapshot struct {
	MedianStaffTurnover float64   `json:"medianStaffTurnover"`
	MedianStaffingHours float64   `json:"medianStaffingHours"`
	TurnoverSamples     int       `json:"turnoverSamples"`
	StaffingSamples     int       `json:"staffingSamples"`
	FacilityCount       int       `json:"facilityCount"`
	ComputedAt          time.Time `json:"computedAt"`
}

// ScoredFacility pairs a facility with its poetiq rating.
type ScoredFacility struct {
	Facility
	PoetiqRating float64 `json:"poetiqRating"`
}

// FacilityScores is a full scoring pass: every facility rated against the
// one baseline snapshot computed from the same dataset load.
type FacilityScores struct {
	Baseline   BaselineSnapshot `json:"baseline"`
	Facilities []ScoredFacility `json:"facilities"`
}
