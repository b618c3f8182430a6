package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/internal/model"
)

func TestGoalRepository_ActiveGoals(t *testing.T) {
	gdb := newTestDB(t)
	f := seedFixture(t, gdb)
	other := model.CareerGoal{Name: "Data Analyst", Strategy: model.StrategyFixedCurriculum, CurriculumID: "data-analyst"}
	require.NoError(t, gdb.Create(&other).Error)
	repo := NewGoalRepository(gdb)
	ctx := context.Background()

	active := &model.UserCareerGoal{UserID: 1, CareerGoalID: f.goal.ID, Status: model.GoalStatusActive}
	require.NoError(t, repo.CreateUserGoal(ctx, active))
	require.NoError(t, repo.CreateUserGoal(ctx, &model.UserCareerGoal{UserID: 1, CareerGoalID: f.goal.ID, Status: model.GoalStatusActive}))
	require.NoError(t, repo.CreateUserGoal(ctx, &model.UserCareerGoal{UserID: 1, CareerGoalID: other.ID, Status: model.GoalStatusAbandoned}))
	require.NoError(t, repo.CreateUserGoal(ctx, &model.UserCareerGoal{UserID: 2, CareerGoalID: other.ID, Status: model.GoalStatusActive}))

	goals, err := repo.ActiveGoals(ctx, 1)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Database Admin", goals[0].Name)

	has, err := repo.HasActiveGoal(ctx, 1, other.ID)
	require.NoError(t, err)
	assert.False(t, has)

	mine, err := repo.ListUserGoals(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for _, g := range mine {
		require.NotNil(t, g.CareerGoal)
	}

	theirs, err := repo.ListUserGoals(ctx, 2)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, model.StrategyFixedCurriculum, theirs[0].CareerGoal.Strategy)
}

func TestGoalRepository_OwnerScopedWrites(t *testing.T) {
	gdb := newTestDB(t)
	f := seedFixture(t, gdb)
	repo := NewGoalRepository(gdb)
	ctx := context.Background()

	goal := &model.UserCareerGoal{UserID: 1, CareerGoalID: f.goal.ID, Status: model.GoalStatusActive}
	require.NoError(t, repo.CreateUserGoal(ctx, goal))

	ok, err := repo.UpdateUserGoalStatus(ctx, 2, goal.ID, model.GoalStatusCompleted)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = repo.DeleteUserGoal(ctx, 2, goal.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.UpdateUserGoalStatus(ctx, 1, goal.ID, model.GoalStatusCompleted)
	require.NoError(t, err)
	assert.True(t, ok)
	goals, err := repo.ActiveGoals(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, goals)

	ok, err = repo.DeleteUserGoal(ctx, 1, goal.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.DeleteUserGoal(ctx, 1, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}
