package repository

import (
	"context"

	"gorm.io/gorm"

	"careerpath/internal/model"
)

// QuizRepository stores quiz questions and attempts.
type QuizRepository interface {
	Questions(ctx context.Context, skillID uint) ([]model.QuizQuestion, error)
	CreateResult(ctx context.Context, result *model.QuizResult) error
	ListResults(ctx context.Context, userID uint) ([]model.QuizResult, error)
	UpsertLevel(ctx context.Context, userID, skillID uint, level model.SkillLevel) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo QuizRepository) error) error
}

type quizRepository struct {
	db *gorm.DB
}

// NewQuizRepository creates a new quiz repository.
func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Questions(ctx context.Context, skillID uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	if err := r.db.WithContext(ctx).Where("skill_id = ?", skillID).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizRepository) CreateResult(ctx context.Context, result *model.QuizResult) error {
	return r.db.WithContext(ctx).Omit("Skill").Create(result).Error
}

// ListResults returns the user's attempts, newest first.
func (r *quizRepository) ListResults(ctx context.Context, userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizRepository) UpsertLevel(ctx context.Context, userID, skillID uint, level model.SkillLevel) error {
	return upsertUserSkill(r.db.WithContext(ctx), userID, skillID, level)
}

// WithTransaction executes a function within a database transaction.
func (r *quizRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo QuizRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &quizRepository{db: tx})
	})
}
