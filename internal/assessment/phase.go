package assessment

import (
	"strings"

	"poetiq/internal/model"
)

// Vocabulary for each ladder branch. The branches are not mutually
// exclusive, so ladder order is the tie-break rule and must not change.
var (
	hospiceTerms        = []string{"hospice"}
	institutionTerms    = []string{"nursing", "memory care"}
	acuteTerms          = []string{"hospital", "rehab"}
	homeTerms           = []string{"home"}
	highDependencyTerms = []string{"significant", "total", "complete"}
)

// ClassifyPhase maps a location/dependency answer pair to a care-journey
// phase via an ordered priority ladder, first match wins. Matching is
// case-insensitive substring containment: this is a lexical classifier, and
// anything outside the known vocabulary falls through to early planning.
func ClassifyPhase(location, dependency string) model.PhaseID {
	loc := strings.ToLower(location)

	switch {
	case containsAny(loc, hospiceTerms):
		return model.PhaseEndOfLife
	case containsAny(loc, institutionTerms):
		return model.PhaseInstitutional
	case containsAny(loc, acuteTerms):
		return model.PhaseAcuteCrisis
	case containsAny(loc, homeTerms):
		if containsAny(strings.ToLower(dependency), highDependencyTerms) {
			return model.PhaseIntensiveHome
		}
		return model.PhaseEarlyPlanning
	}
	return model.PhaseEarlyPlanning
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
