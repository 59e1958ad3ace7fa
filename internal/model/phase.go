package model

// PhaseID identifies one of the five ordered care-journey stages.
type PhaseID int

const (
	PhaseEarlyPlanning PhaseID = 1 // planning ahead, loved one mostly independent
	PhaseAcuteCrisis   PhaseID = 2 // hospital or rehab stay
	PhaseIntensiveHome PhaseID = 3 // heavy hands-on care at home
	PhaseInstitutional PhaseID = 4 // nursing home / memory care placement
	PhaseEndOfLife     PhaseID = 5 // hospice
)

// Phase is reference data for a care-journey stage: the base cognitive drag
// weight the engine consumes plus narrative fields it only passes through.
type Phase struct {
	ID                PhaseID `json:"id" bson:"_id"`
	Name              string  `json:"name" bson:"name"`
	JourneyLabel      string  `json:"journeyLabel" bson:"journeyLabel"`
	NextStage         string  `json:"nextStage" bson:"nextStage"`
	BaseCognitiveDrag float64 `json:"baseCognitiveDrag" bson:"baseCognitiveDrag"`
}
