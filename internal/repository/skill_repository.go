package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"careerpath/internal/model"
)

// SkillRepository covers the skill catalog and the per-user skill ledger.
type SkillRepository interface {
	List(ctx context.Context) ([]model.Skill, error)
	FindByID(ctx context.Context, id uint) (*model.Skill, error)
	ListUserSkills(ctx context.Context, userID uint) ([]model.UserSkill, error)
	UpsertLevel(ctx context.Context, userID, skillID uint, level model.SkillLevel) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SkillRepository) error) error
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

// List returns the catalog ordered by category then name.
func (r *skillRepository) List(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.db.WithContext(ctx).Order("category, name").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepository) FindByID(ctx context.Context, id uint) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// ListUserSkills returns the user's ledger with the Skill relation loaded.
func (r *skillRepository) ListUserSkills(ctx context.Context, userID uint) ([]model.UserSkill, error) {
	var rows []model.UserSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("skill_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *skillRepository) UpsertLevel(ctx context.Context, userID, skillID uint, level model.SkillLevel) error {
	return upsertUserSkill(r.db.WithContext(ctx), userID, skillID, level)
}

// WithTransaction executes a function within a database transaction.
func (r *skillRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SkillRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &skillRepository{db: tx})
	})
}

// upsertUserSkill keeps at most one ledger row per (user, skill).
func upsertUserSkill(db *gorm.DB, userID, skillID uint, level model.SkillLevel) error {
	row := model.UserSkill{UserID: userID, SkillID: skillID, Level: level}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"level", "updated_at"}),
	}).Create(&row).Error
}
