package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"careerpath/internal/model"
)

func TestCalculateGaps(t *testing.T) {
	tests := []struct {
		name     string
		ledger   Ledger
		required string
		want     []SkillGap
	}{
		{
			name:     "empty required skills",
			ledger:   Ledger{"SQL": model.LevelBeginner},
			required: "  ",
			want:     []SkillGap{},
		},
		{
			name:     "unassessed skill has maximum gap",
			ledger:   Ledger{},
			required: "SQL",
			want:     []SkillGap{{Skill: "SQL", Current: model.LevelNone, Required: model.LevelAdvanced, Gap: 3}},
		},
		{
			name: "gap is three minus level and never negative",
			ledger: Ledger{
				"Python": model.LevelBeginner,
				"SQL":    model.LevelIntermediate,
				"Excel":  model.LevelAdvanced,
			},
			required: "Python, SQL ,Excel",
			want: []SkillGap{
				{Skill: "Python", Current: model.LevelBeginner, Required: model.LevelAdvanced, Gap: 2},
				{Skill: "SQL", Current: model.LevelIntermediate, Required: model.LevelAdvanced, Gap: 1},
				{Skill: "Excel", Current: model.LevelAdvanced, Required: model.LevelAdvanced, Gap: 0},
			},
		},
		{
			name:     "blanks and duplicates dropped",
			ledger:   Ledger{},
			required: "Go,,Go, Docker,",
			want: []SkillGap{
				{Skill: "Go", Current: model.LevelNone, Required: model.LevelAdvanced, Gap: 3},
				{Skill: "Docker", Current: model.LevelNone, Required: model.LevelAdvanced, Gap: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateGaps(tt.ledger, tt.required))
		})
	}
}

func TestSortGapsIsStableDescending(t *testing.T) {
	gaps := []SkillGap{
		{Skill: "A", Gap: 1},
		{Skill: "B", Gap: 3},
		{Skill: "C", Gap: 1},
		{Skill: "D", Gap: 3},
		{Skill: "E", Gap: 0},
	}
	SortGaps(gaps)

	var order []string
	for _, g := range gaps {
		order = append(order, g.Skill)
	}
	assert.Equal(t, []string{"B", "D", "A", "C", "E"}, order)
}

func TestLedgerFromSkills(t *testing.T) {
	rows := []model.UserSkill{
		{SkillID: 1, Level: model.LevelIntermediate, Skill: &model.Skill{ID: 1, Name: "SQL"}},
		{SkillID: 2, Level: model.LevelAdvanced},
	}
	assert.Equal(t, Ledger{"SQL": model.LevelIntermediate}, LedgerFromSkills(rows))
}
