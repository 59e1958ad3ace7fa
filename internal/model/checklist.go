package model

// ChecklistStatus is the tri-state completion status of a checklist item.
type ChecklistStatus string

const (
	StatusMissing  ChecklistStatus = "missing"
	StatusPartial  ChecklistStatus = "partial"
	StatusComplete ChecklistStatus = "complete"
)

// ChecklistItemTypeLegal marks items in the "sign legal documents" category,
// the only category with a specialized status resolver.
const ChecklistItemTypeLegal = "sign legal documents"

// ChecklistItem is a phase-specific action item. Type is a category tag.
type ChecklistItem struct {
	PhaseID PhaseID `json:"phaseId" bson:"phaseId"`
	Text    string  `json:"text" bson:"text"`
	Type    string  `json:"type" bson:"type"`
}

// ChecklistItemStatus pairs an item with its resolved status.
type ChecklistItemStatus struct {
	Item   ChecklistItem   `json:"item"`
	Status ChecklistStatus `json:"status"`
}

// POALevel is the risk tier for the power-of-attorney sub-classifier.
type POALevel string

const (
	POARed   POALevel = "red"
	POAAmber POALevel = "amber"
	POAGreen POALevel = "green"
)

// POAStatus is the power-of-attorney classification with its caregiver-facing
// message.
type POAStatus struct {
	Level   POALevel `json:"level"`
	Message string   `json:"message"`
}
