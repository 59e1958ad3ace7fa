package assessment

import "poetiq/internal/model"

// WeightTable resolves the drag weight of an answer by question id and exact
// answer value. Keying on question ids keeps the lookup stable when question
// wording changes.
type WeightTable map[int]map[string]float64

// NewWeightTable builds a lookup from the choice reference data.
func NewWeightTable(choices []model.Choice) WeightTable {
	table := make(WeightTable)
	for _, c := range choices {
		if table[c.QuestionID] == nil {
			table[c.QuestionID] = make(map[string]float64)
		}
		table[c.QuestionID][c.Value] = c.DragWeight
	}
	return table
}

// Weight returns the drag weight for an answer. An unmatched answer
// contributes 0: data-quality gaps are expected and never an error.
func (t WeightTable) Weight(questionID int, answer string) float64 {
	return t[questionID][answer]
}

// BaseDragTable maps each phase to its base cognitive drag weight.
type BaseDragTable map[model.PhaseID]float64

// NewBaseDragTable builds the lookup from the phase reference data.
func NewBaseDragTable(phases []model.Phase) BaseDragTable {
	table := make(BaseDragTable, len(phases))
	for _, p := range phases {
		table[p.ID] = p.BaseCognitiveDrag
	}
	return table
}

// AggregateDrag combines the phase's base drag with the weighted
// contributions of the time, legal, and conflict answers. Every term is
// non-negative and the total is uncapped. Callers must only invoke this once
// the phase and all three answers are present; a partial score is worse than
// no score.
func AggregateDrag(phase model.PhaseID, timeAnswer, legalAnswer, conflictAnswer string, base BaseDragTable, weights WeightTable) model.DragBreakdown {
	d := model.DragBreakdown{
		Base:          base[phase],
		TimeFriction:  weights.Weight(model.QuestionTimeSpent, timeAnswer),
		LegalExposure: weights.Weight(model.QuestionLegalPrep, legalAnswer),
		Conflict:      weights.Weight(model.QuestionConflict, conflictAnswer),
	}
	d.Total = d.Base + d.TimeFriction + d.LegalExposure + d.Conflict
	return d
}
