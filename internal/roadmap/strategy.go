package roadmap

import (
	"strings"

	"careerpath/internal/model"
)

// legacyDataAnalystName is matched when a goal carries no explicit strategy.
const legacyDataAnalystName = "Data Analyst"

// Strategy is either the generic gap allocator or a fixed curriculum.
type Strategy struct {
	Kind         model.PlanStrategy `json:"kind"`
	CurriculumID string             `json:"curriculum_id,omitempty"`
}

// Generic selects the gap allocator.
func Generic() Strategy {
	return Strategy{Kind: model.StrategyGeneric}
}

// FixedCurriculum selects the curriculum registered under id.
func FixedCurriculum(id string) Strategy {
	return Strategy{Kind: model.StrategyFixedCurriculum, CurriculumID: id}
}

// IsFixed reports whether s selects a fixed curriculum.
func (s Strategy) IsFixed() bool {
	return s.Kind == model.StrategyFixedCurriculum
}

// StrategyFor reads the goal's strategy metadata. Goals without metadata fall back to
// the historical rule: a goal named "Data Analyst" (any case) uses that curriculum.
func StrategyFor(goal model.CareerGoal) Strategy {
	switch goal.Strategy {
	case model.StrategyFixedCurriculum:
		id := goal.CurriculumID
		if id == "" && strings.EqualFold(goal.Name, legacyDataAnalystName) {
			id = DataAnalystCurriculumID
		}
		return FixedCurriculum(id)
	case model.StrategyGeneric:
		return Generic()
	}
	if strings.EqualFold(goal.Name, legacyDataAnalystName) {
		return FixedCurriculum(DataAnalystCurriculumID)
	}
	return Generic()
}
