package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careerpath/internal/model"
)

// SkillProgress counts a user's tasks for one skill.
type SkillProgress struct {
	Completed int64
	Total     int64
}

// RoadmapRepository persists generated task sets, their generation record and
// the ledger writes of the status feedback loop.
type RoadmapRepository interface {
	ReplacePlan(ctx context.Context, userID uint, tasks []model.RoadmapTask, generation *model.RoadmapGeneration) error
	FindGeneration(ctx context.Context, userID uint) (*model.RoadmapGeneration, error)
	ListTasks(ctx context.Context, userID uint) ([]model.RoadmapTask, error)
	FindTask(ctx context.Context, userID uint, taskID uuid.UUID) (*model.RoadmapTask, error)
	UpdateTaskStatus(ctx context.Context, userID uint, taskID uuid.UUID, status model.TaskStatus) error
	SkillProgress(ctx context.Context, userID, skillID uint) (SkillProgress, error)
	UpsertLevel(ctx context.Context, userID, skillID uint, level model.SkillLevel) error
	ReferencedSkillLevels(ctx context.Context, userID uint) ([]model.SkillLevelView, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo RoadmapRepository) error) error
}

type roadmapRepository struct {
	db *gorm.DB
}

// NewRoadmapRepository creates a new roadmap repository.
func NewRoadmapRepository(db *gorm.DB) RoadmapRepository {
	return &roadmapRepository{db: db}
}

// ReplacePlan deletes the user's tasks and generation record and writes the new ones.
// Either everything is replaced or nothing is.
func (r *roadmapRepository) ReplacePlan(ctx context.Context, userID uint, tasks []model.RoadmapTask, generation *model.RoadmapGeneration) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.RoadmapTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.RoadmapGeneration{}).Error; err != nil {
			return err
		}
		if len(tasks) > 0 {
			if err := tx.Omit("Resource").CreateInBatches(tasks, 200).Error; err != nil {
				return err
			}
		}
		generation.UserID = userID
		return tx.Create(generation).Error
	})
}

func (r *roadmapRepository) FindGeneration(ctx context.Context, userID uint) (*model.RoadmapGeneration, error) {
	var generation model.RoadmapGeneration
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&generation).Error; err != nil {
		return nil, err
	}
	return &generation, nil
}

// ListTasks returns the user's tasks ordered by week with resource and skill loaded.
func (r *roadmapRepository) ListTasks(ctx context.Context, userID uint) ([]model.RoadmapTask, error) {
	var tasks []model.RoadmapTask
	err := r.db.WithContext(ctx).
		Preload("Resource.Skill").
		Where("user_id = ?", userID).
		Order("week, position, id").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindTask only finds tasks owned by userID.
func (r *roadmapRepository) FindTask(ctx context.Context, userID uint, taskID uuid.UUID) (*model.RoadmapTask, error) {
	var task model.RoadmapTask
	err := r.db.WithContext(ctx).
		Preload("Resource.Skill").
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTaskStatus returns gorm.ErrRecordNotFound when userID owns no such task.
func (r *roadmapRepository) UpdateTaskStatus(ctx context.Context, userID uint, taskID uuid.UUID, status model.TaskStatus) error {
	res := r.db.WithContext(ctx).Model(&model.RoadmapTask{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SkillProgress counts the user's tasks whose resource belongs to skillID.
func (r *roadmapRepository) SkillProgress(ctx context.Context, userID, skillID uint) (SkillProgress, error) {
	var progress SkillProgress
	err := r.db.WithContext(ctx).Model(&model.RoadmapTask{}).
		Select("COUNT(*) AS total, COUNT(CASE WHEN roadmap_tasks.status = ? THEN 1 END) AS completed", model.TaskStatusCompleted).
		Joins("JOIN resources ON resources.id = roadmap_tasks.resource_id").
		Where("roadmap_tasks.user_id = ? AND resources.skill_id = ?", userID, skillID).
		Scan(&progress).Error
	return progress, err
}

func (r *roadmapRepository) UpsertLevel(ctx context.Context, userID, skillID uint, level model.SkillLevel) error {
	return upsertUserSkill(r.db.WithContext(ctx), userID, skillID, level)
}

// ReferencedSkillLevels returns the user's level for every skill any of their tasks points at.
func (r *roadmapRepository) ReferencedSkillLevels(ctx context.Context, userID uint) ([]model.SkillLevelView, error) {
	var views []model.SkillLevelView
	err := r.db.WithContext(ctx).
		Table("roadmap_tasks").
		Select("DISTINCT skills.id AS skill_id, skills.name AS skill_name, skills.category AS category, COALESCE(user_skills.level, 0) AS level").
		Joins("JOIN resources ON resources.id = roadmap_tasks.resource_id").
		Joins("JOIN skills ON skills.id = resources.skill_id").
		Joins("LEFT JOIN user_skills ON user_skills.skill_id = skills.id AND user_skills.user_id = roadmap_tasks.user_id").
		Where("roadmap_tasks.user_id = ?", userID).
		Order("skills.name").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// WithTransaction executes a function within a database transaction.
func (r *roadmapRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo RoadmapRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &roadmapRepository{db: tx})
	})
}
