package assessment

import (
	"strings"

	"poetiq/internal/model"
)

// Keyword ladders for the power-of-attorney sub-classifier. Red is checked
// before amber; green is the fallback when neither tier fires, not a
// positive keyword match.
var (
	poaRedTerms   = []string{"not yet", "not signed", "missing", "none", "haven't"}
	poaAmberTerms = []string{"exists", "find", "look for", "somewhere", "can't locate"}
)

// ResolvePOAStatus classifies the legal-preparedness answer on a three-tier
// keyword ladder, first match wins.
func ResolvePOAStatus(answer string) model.POAStatus {
	text := strings.ToLower(answer)
	switch {
	case containsAny(text, poaRedTerms):
		return model.POAStatus{
			Level:   model.POARed,
			Message: "Critical risk: no signed power of attorney is in place.",
		}
	case containsAny(text, poaAmberTerms):
		return model.POAStatus{
			Level:   model.POAAmber,
			Message: "At risk: the document exists but cannot be produced on demand.",
		}
	}
	return model.POAStatus{
		Level:   model.POAGreen,
		Message: "Secured: power of attorney is signed and locatable.",
	}
}

// ResolveChecklistStatus derives the tri-state completion status of a
// checklist item from the session's answers. Power-of-attorney items get the
// dedicated sub-classifier; every other item is read off the legal-status
// answer text and can reach partial at best: only the POA path reports
// complete.
func ResolveChecklistStatus(item model.ChecklistItem, answers map[int]string) model.ChecklistStatus {
	legalAnswer := answers[model.QuestionLegalPrep]

	if isPOAItem(item) {
		if legalAnswer == "" {
			return model.StatusMissing
		}
		switch ResolvePOAStatus(legalAnswer).Level {
		case model.POARed:
			return model.StatusMissing
		case model.POAAmber:
			return model.StatusPartial
		default:
			return model.StatusComplete
		}
	}

	text := strings.ToLower(legalAnswer)
	switch {
	case strings.Contains(text, "nothing"), strings.Contains(text, "missing"):
		return model.StatusMissing
	case strings.Contains(text, "partial"), strings.Contains(text, "some"):
		return model.StatusPartial
	}
	return model.StatusMissing
}

func isPOAItem(item model.ChecklistItem) bool {
	if item.Type != model.ChecklistItemTypeLegal {
		return false
	}
	text := strings.ToLower(item.Text)
	return strings.Contains(text, "lpa") || strings.Contains(text, "power of attorney")
}
