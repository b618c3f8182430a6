package service

import (
	"context"

	"careerpath/internal/model"
	"careerpath/internal/repository"
)

// CatalogService exposes the learning resource catalog.
type CatalogService interface {
	Resources(ctx context.Context, skillID uint) ([]model.Resource, error)
}

type catalogService struct {
	resourceRepo repository.ResourceRepository
}

func NewCatalogService(resourceRepo repository.ResourceRepository) CatalogService {
	return &catalogService{resourceRepo: resourceRepo}
}

// Resources lists resources of one skill, or all of them when skillID is 0.
func (s *catalogService) Resources(ctx context.Context, skillID uint) ([]model.Resource, error) {
	return s.resourceRepo.List(ctx, skillID)
}
