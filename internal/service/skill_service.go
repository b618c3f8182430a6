package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"careerpath/internal/errors"
	"careerpath/internal/model"
	"careerpath/internal/repository"
)

// SkillAssessment is one self-assessed level.
type SkillAssessment struct {
	SkillID uint             `json:"skill_id" validate:"required"`
	Level   model.SkillLevel `json:"level"`
}

// SkillService exposes the skill catalog and the user's skill ledger.
type SkillService interface {
	List(ctx context.Context) ([]model.Skill, error)
	Ledger(ctx context.Context, userID uint) ([]model.UserSkill, error)
	Assess(ctx context.Context, userID uint, assessments []SkillAssessment) ([]model.UserSkill, error)
}

type skillService struct {
	repo repository.SkillRepository
}

// NewSkillService creates a new skill service.
func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillService{repo: repo}
}

func (s *skillService) List(ctx context.Context) ([]model.Skill, error) {
	return s.repo.List(ctx)
}

func (s *skillService) Ledger(ctx context.Context, userID uint) ([]model.UserSkill, error) {
	return s.repo.ListUserSkills(ctx, userID)
}

// Assess writes every level or none of them.
func (s *skillService) Assess(ctx context.Context, userID uint, assessments []SkillAssessment) ([]model.UserSkill, error) {
	for _, a := range assessments {
		if !a.Level.Valid() {
			return nil, errors.ErrInvalidSkillLevel
		}
	}

	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.SkillRepository) error {
		for _, a := range assessments {
			if _, err := repo.FindByID(ctx, a.SkillID); err != nil {
				if stderrors.Is(err, gorm.ErrRecordNotFound) {
					return errors.ErrSkillNotFound
				}
				return fmt.Errorf("find skill: %w", err)
			}
			if err := repo.UpsertLevel(ctx, userID, a.SkillID, a.Level); err != nil {
				return fmt.Errorf("upsert skill level: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.ListUserSkills(ctx, userID)
}
