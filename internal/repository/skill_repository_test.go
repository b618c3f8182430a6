package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/internal/model"
)

func TestSkillRepository_UpsertKeepsOneRow(t *testing.T) {
	gdb := newTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewSkillRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.UpsertLevel(ctx, 1, f.sql.ID, model.LevelBeginner))
	require.NoError(t, repo.UpsertLevel(ctx, 1, f.sql.ID, model.LevelIntermediate))
	require.NoError(t, repo.UpsertLevel(ctx, 1, f.python.ID, model.LevelAdvanced))

	rows, err := repo.ListUserSkills(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "SQL", rows[0].Skill.Name)
	assert.Equal(t, model.LevelIntermediate, rows[0].Level)
	assert.Equal(t, model.LevelAdvanced, rows[1].Level)

	skills, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "Data", skills[0].Category)
}

func TestSkillRepository_TransactionRollback(t *testing.T) {
	gdb := newTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewSkillRepository(gdb)
	ctx := context.Background()

	err := repo.WithTransaction(ctx, func(ctx context.Context, tx SkillRepository) error {
		if err := tx.UpsertLevel(ctx, 1, f.sql.ID, model.LevelAdvanced); err != nil {
			return err
		}
		return tx.UpsertLevel(ctx, 1, 9999, model.LevelAdvanced)
	})
	require.Error(t, err)

	rows, err := repo.ListUserSkills(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQuizRepository(t *testing.T) {
	gdb := newTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewQuizRepository(gdb)
	ctx := context.Background()

	require.NoError(t, gdb.Create(&[]model.QuizQuestion{
		{SkillID: f.sql.ID, QuestionText: "SELECT retrieves rows?", QuestionType: model.QuestionTypeTrueFalse, CorrectAnswer: "true"},
		{SkillID: f.python.ID, QuestionText: "len([1,2])?", QuestionType: model.QuestionTypeMultipleChoice, CorrectAnswer: "2"},
	}).Error)

	questions, err := repo.Questions(ctx, f.sql.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "true", questions[0].CorrectAnswer)

	boom := errors.New("boom")
	err = repo.WithTransaction(ctx, func(ctx context.Context, tx QuizRepository) error {
		result := &model.QuizResult{UserID: 1, SkillID: f.sql.ID, Score: 1, TotalQuestions: 1, Percentage: decimal.NewFromInt(100), Level: model.LevelAdvanced}
		if err := tx.CreateResult(ctx, result); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	results, err := repo.ListResults(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, results)

	result := &model.QuizResult{UserID: 1, SkillID: f.sql.ID, Score: 1, TotalQuestions: 2, Percentage: decimal.RequireFromString("50.00"), Level: model.LevelIntermediate}
	require.NoError(t, repo.CreateResult(ctx, result))
	results, err = repo.ListResults(ctx, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "SQL", results[0].Skill.Name)
	assert.True(t, decimal.NewFromInt(50).Equal(results[0].Percentage))
}

func TestResourceRepository_List(t *testing.T) {
	gdb := newTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewResourceRepository(gdb)
	ctx := context.Background()

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "SQL 101", all[0].Title)
	assert.Equal(t, "SQL", all[0].Skill.Name)

	py, err := repo.List(ctx, f.python.ID)
	require.NoError(t, err)
	require.Len(t, py, 1)
	assert.Equal(t, "Python Basics", py[0].Title)
}

func TestUserRepository(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	user := &model.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	found, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByID(ctx, user.ID+1)
	assert.Error(t, err)
	assert.Error(t, repo.Create(ctx, &model.User{Name: "Dup", Email: "ada@example.com", PasswordHash: "y"}))
}
