package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/internal/db"
	"careerpath/internal/logger"
	"careerpath/internal/model"
	"careerpath/internal/roadmap"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, c.Skills)
	assert.NotEmpty(t, c.Questions)

	var analyst *GoalSeed
	for i := range c.Goals {
		if c.Goals[i].Name == "Data Analyst" {
			analyst = &c.Goals[i]
		}
	}
	require.NotNil(t, analyst)
	assert.Equal(t, string(model.StrategyFixedCurriculum), analyst.Strategy)
	assert.Equal(t, roadmap.DataAnalystCurriculumID, analyst.CurriculumID)

	// every curriculum skill has a catalog entry so block tasks can find resources
	names := map[string]bool{}
	for _, s := range c.Skills {
		names[s.Name] = true
	}
	curriculum, ok := roadmap.LookupCurriculum(roadmap.DataAnalystCurriculumID)
	require.True(t, ok)
	for _, s := range curriculum.Skills {
		assert.True(t, names[s.Name], s.Name)
	}
}

func TestParseRejectsBrokenReferences(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown goal skill", "skills: [{name: SQL}]\ngoals: [{name: DBA, required_skills: 'SQL, Rust'}]"},
		{"unknown curriculum", "skills: [{name: SQL}]\ngoals: [{name: DBA, strategy: fixed_curriculum, curriculum_id: nope}]"},
		{"unknown strategy", "skills: [{name: SQL}]\ngoals: [{name: DBA, strategy: magic}]"},
		{"resource type", "skills: [{name: SQL}]\nresources: [{skill: SQL, title: T, type: podcast, url: u}]"},
		{"resource difficulty", "skills: [{name: SQL}]\nresources: [{skill: SQL, title: T, type: pdf, url: u, difficulty: expert}]"},
		{"answer not an option", "skills: [{name: SQL}]\nquiz_questions: [{skill: SQL, question: Q, type: true_false, answer: 'yes', options: ['true', 'false']}]"},
		{"duplicate skill", "skills: [{name: SQL}, {name: SQL}]"},
		{"not yaml", "skills: [unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	gdb, err := db.OpenInMemory(t.Name())
	require.NoError(t, err)
	c, err := Default()
	require.NoError(t, err)
	ctx := context.Background()

	first, err := Seed(ctx, gdb, c, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, len(c.Skills), first.Skills)
	assert.Equal(t, len(c.Goals), first.Goals)
	assert.Equal(t, len(c.Resources), first.Resources)
	assert.Equal(t, len(c.Questions), first.Questions)

	second, err := Seed(ctx, gdb, c, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, second)

	var goal model.CareerGoal
	require.NoError(t, gdb.Where("name = ?", "Data Analyst").First(&goal).Error)
	assert.Equal(t, roadmap.FixedCurriculum(roadmap.DataAnalystCurriculumID), roadmap.StrategyFor(goal))

	var question model.QuizQuestion
	require.NoError(t, gdb.Where("question_type = ?", model.QuestionTypeTrueFalse).First(&question).Error)
	assert.JSONEq(t, `["true","false"]`, string(question.Options))
}
