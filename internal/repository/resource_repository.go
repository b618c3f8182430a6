package repository

import (
	"context"

	"gorm.io/gorm"

	"careerpath/internal/model"
)

// ResourceRepository reads the learning resource catalog.
type ResourceRepository interface {
	List(ctx context.Context, skillID uint) ([]model.Resource, error)
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository.
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

// List returns resources in catalog (id) order with their skill loaded.
// A zero skillID lists every skill.
func (r *resourceRepository) List(ctx context.Context, skillID uint) ([]model.Resource, error) {
	q := r.db.WithContext(ctx).Preload("Skill").Order("id")
	if skillID != 0 {
		q = q.Where("skill_id = ?", skillID)
	}
	var resources []model.Resource
	if err := q.Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}
