package model

// Well-known question ids. Answers are keyed by these ids everywhere in the
// system; choice drag weights join on them too, never on question text.
const (
	QuestionLocation   = 1 // where is your loved one living right now
	QuestionDependency = 2 // how much help do they need day to day
	QuestionTimeSpent  = 3 // hours per day spent on care tasks
	QuestionLegalPrep  = 4 // status of power of attorney / legal documents
	QuestionConflict   = 5 // family disagreement about care decisions
)

// Question is immutable reference data. Type is a category tag used by the
// UI for icon selection only.
type Question struct {
	ID   int    `json:"id" bson:"_id"`
	Text string `json:"text" bson:"text"`
	Type string `json:"type" bson:"type"`
}

// Choice is one selectable answer for a question, carrying the drag weight
// it contributes when chosen. Weight defaults to 0 when a choice has none.
type Choice struct {
	QuestionID int     `json:"questionId" bson:"questionId"`
	Value      string  `json:"value" bson:"value"`
	DragWeight float64 `json:"dragWeight" bson:"dragWeight"`
}

// ReferenceData bundles the full questionnaire reference set for seeding.
type ReferenceData struct {
	Questions      []Question      `json:"questions"`
	Choices        []Choice        `json:"choices"`
	Phases         []Phase         `json:"phases"`
	ChecklistItems []ChecklistItem `json:"checklistItems"`
}
