package roadmap

import (
	"sort"
	"strings"

	"careerpath/internal/model"
)

// SkillGap is the shortfall between a user's level and the level a goal requires.
type SkillGap struct {
	Skill    string           `json:"skill"`
	Current  model.SkillLevel `json:"current_level"`
	Required model.SkillLevel `json:"required_level"`
	Gap      int              `json:"gap"`
}

// Ledger maps skill name to the user's assessed level. Missing skills count as LevelNone.
type Ledger map[string]model.SkillLevel

// GapFor computes max(0, required - current) for one skill.
func (l Ledger) GapFor(skill string, required model.SkillLevel) SkillGap {
	current := l[skill]
	gap := int(required) - int(current)
	if gap < 0 {
		gap = 0
	}
	return SkillGap{Skill: skill, Current: current, Required: required, Gap: gap}
}

// CalculateGaps returns one gap per skill named in requiredSkills, in the order given.
// Every skill is required at MaxSkillLevel. Blank names are dropped and duplicates keep
// their first occurrence, so an empty string yields an empty result.
func CalculateGaps(ledger Ledger, requiredSkills string) []SkillGap {
	goal := model.CareerGoal{RequiredSkills: requiredSkills}
	names := goal.RequiredSkillNames()
	gaps := make([]SkillGap, 0, len(names))
	for _, name := range names {
		gaps = append(gaps, ledger.GapFor(name, model.MaxSkillLevel))
	}
	return gaps
}

// SortGaps orders gaps largest first. Ties keep their input order.
func SortGaps(gaps []SkillGap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Gap > gaps[j].Gap
	})
}

// LedgerFromSkills builds a Ledger from a user's skill rows (Skill must be preloaded).
func LedgerFromSkills(rows []model.UserSkill) Ledger {
	ledger := make(Ledger, len(rows))
	for _, row := range rows {
		if row.Skill == nil {
			continue
		}
		ledger[strings.TrimSpace(row.Skill.Name)] = row.Level
	}
	return ledger
}
