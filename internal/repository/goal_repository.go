package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careerpath/internal/model"
)

// GoalRepository covers the goal catalog and users' goals.
type GoalRepository interface {
	List(ctx context.Context) ([]model.CareerGoal, error)
	FindByID(ctx context.Context, id uint) (*model.CareerGoal, error)
	ListUserGoals(ctx context.Context, userID uint) ([]model.UserCareerGoal, error)
	ActiveGoals(ctx context.Context, userID uint) ([]model.CareerGoal, error)
	HasActiveGoal(ctx context.Context, userID, goalID uint) (bool, error)
	CreateUserGoal(ctx context.Context, goal *model.UserCareerGoal) error
	UpdateUserGoalStatus(ctx context.Context, userID uint, id uuid.UUID, status model.GoalStatus) (bool, error)
	DeleteUserGoal(ctx context.Context, userID uint, id uuid.UUID) (bool, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo GoalRepository) error) error
}

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository.
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) List(ctx context.Context) ([]model.CareerGoal, error) {
	var goals []model.CareerGoal
	if err := r.db.WithContext(ctx).Order("name").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepository) FindByID(ctx context.Context, id uint) (*model.CareerGoal, error) {
	var goal model.CareerGoal
	if err := r.db.WithContext(ctx).First(&goal, id).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// ListUserGoals returns every goal the user holds, newest first, with the catalog goal loaded.
func (r *goalRepository) ListUserGoals(ctx context.Context, userID uint) ([]model.UserCareerGoal, error) {
	var goals []model.UserCareerGoal
	err := r.db.WithContext(ctx).
		Preload("CareerGoal").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// ActiveGoals returns the catalog goals behind the user's active goals, oldest first.
func (r *goalRepository) ActiveGoals(ctx context.Context, userID uint) ([]model.CareerGoal, error) {
	var goals []model.CareerGoal
	err := r.db.WithContext(ctx).
		Joins("JOIN user_career_goals ON user_career_goals.career_goal_id = career_goals.id").
		Where("user_career_goals.user_id = ? AND user_career_goals.status = ?", userID, model.GoalStatusActive).
		Order("user_career_goals.created_at, career_goals.id").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}

	// the same catalog goal may be active twice after status changes
	seen := make(map[uint]bool, len(goals))
	unique := goals[:0]
	for _, g := range goals {
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		unique = append(unique, g)
	}
	return unique, nil
}

func (r *goalRepository) HasActiveGoal(ctx context.Context, userID, goalID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserCareerGoal{}).
		Where("user_id = ? AND career_goal_id = ? AND status = ?", userID, goalID, model.GoalStatusActive).
		Count(&count).Error
	return count > 0, err
}

func (r *goalRepository) CreateUserGoal(ctx context.Context, goal *model.UserCareerGoal) error {
	return r.db.WithContext(ctx).Omit("CareerGoal").Create(goal).Error
}

// UpdateUserGoalStatus reports false when no goal with id belongs to userID.
func (r *goalRepository) UpdateUserGoalStatus(ctx context.Context, userID uint, id uuid.UUID, status model.GoalStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.UserCareerGoal{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", status)
	return res.RowsAffected > 0, res.Error
}

// DeleteUserGoal reports false when no goal with id belongs to userID.
func (r *goalRepository) DeleteUserGoal(ctx context.Context, userID uint, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.UserCareerGoal{})
	return res.RowsAffected > 0, res.Error
}

// WithTransaction executes a function within a database transaction.
func (r *goalRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo GoalRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &goalRepository{db: tx})
	})
}
