package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"careerpath/internal/errors"
	"careerpath/internal/model"
	"careerpath/internal/repository"
	"careerpath/internal/roadmap"
)

// minRecommendationMatch is the share of a goal's skills a user must already hold.
var minRecommendationMatch = decimal.NewFromInt(30)

// GoalRecommendation is a catalog goal ranked by how many of its skills the user holds.
type GoalRecommendation struct {
	Goal            model.CareerGoal `json:"goal"`
	MatchedSkills   int              `json:"matched_skills"`
	RequiredSkills  int              `json:"required_skills"`
	MatchPercentage decimal.Decimal  `json:"match_percentage"`
}

// GoalService manages the goal catalog and users' goals.
type GoalService interface {
	List(ctx context.Context) ([]model.CareerGoal, error)
	UserGoals(ctx context.Context, userID uint) ([]model.UserCareerGoal, error)
	AddGoal(ctx context.Context, userID, goalID uint, targetDate *time.Time) (*model.UserCareerGoal, error)
	UpdateGoalStatus(ctx context.Context, userID uint, id uuid.UUID, status model.GoalStatus) error
	DeleteGoal(ctx context.Context, userID uint, id uuid.UUID) error
	Recommend(ctx context.Context, userID uint) ([]GoalRecommendation, error)
}

type goalService struct {
	goalRepo  repository.GoalRepository
	skillRepo repository.SkillRepository
	// userMutexes serializes goal additions per user.
	userMutexes sync.Map
}

// NewGoalService creates a new goal service.
func NewGoalService(goalRepo repository.GoalRepository, skillRepo repository.SkillRepository) GoalService {
	return &goalService{goalRepo: goalRepo, skillRepo: skillRepo}
}

// getMutex gets or creates a mutex for a user.
func (s *goalService) getMutex(userID uint) *sync.Mutex {
	value, _ := s.userMutexes.LoadOrStore(userID, &sync.Mutex{})
	return value.(*sync.Mutex)
}

func (s *goalService) List(ctx context.Context) ([]model.CareerGoal, error) {
	return s.goalRepo.List(ctx)
}

func (s *goalService) UserGoals(ctx context.Context, userID uint) ([]model.UserCareerGoal, error) {
	return s.goalRepo.ListUserGoals(ctx, userID)
}

// AddGoal checks for an active duplicate and inserts in one transaction.
func (s *goalService) AddGoal(ctx context.Context, userID, goalID uint, targetDate *time.Time) (*model.UserCareerGoal, error) {
	mutex := s.getMutex(userID)
	mutex.Lock()
	defer mutex.Unlock()

	var userGoal *model.UserCareerGoal
	err := s.goalRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.GoalRepository) error {
		goal, err := repo.FindByID(ctx, goalID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrGoalNotFound
			}
			return fmt.Errorf("find goal: %w", err)
		}

		active, err := repo.HasActiveGoal(ctx, userID, goalID)
		if err != nil {
			return fmt.Errorf("check active goal: %w", err)
		}
		if active {
			return errors.ErrGoalAlreadyAdded
		}

		userGoal = &model.UserCareerGoal{
			UserID:       userID,
			CareerGoalID: goalID,
			TargetDate:   targetDate,
			Status:       model.GoalStatusActive,
		}
		if err := repo.CreateUserGoal(ctx, userGoal); err != nil {
			return fmt.Errorf("create user goal: %w", err)
		}
		userGoal.CareerGoal = goal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return userGoal, nil
}

func (s *goalService) UpdateGoalStatus(ctx context.Context, userID uint, id uuid.UUID, status model.GoalStatus) error {
	if !status.Valid() {
		return errors.ErrInvalidGoalStatus
	}
	found, err := s.goalRepo.UpdateUserGoalStatus(ctx, userID, id, status)
	if err != nil {
		return fmt.Errorf("update goal status: %w", err)
	}
	if !found {
		return errors.ErrUserGoalNotFound
	}
	return nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID uint, id uuid.UUID) error {
	found, err := s.goalRepo.DeleteUserGoal(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if !found {
		return errors.ErrUserGoalNotFound
	}
	return nil
}

// Recommend ranks catalog goals by the share of required skills already in the
// user's ledger, keeping those at 30% or more.
func (s *goalService) Recommend(ctx context.Context, userID uint) ([]GoalRecommendation, error) {
	rows, err := s.skillRepo.ListUserSkills(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load skill ledger: %w", err)
	}
	ledger := roadmap.LedgerFromSkills(rows)

	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	recommendations := make([]GoalRecommendation, 0)
	for _, goal := range goals {
		names := goal.RequiredSkillNames()
		if len(names) == 0 {
			continue
		}
		matched := 0
		for _, name := range names {
			if _, ok := ledger[name]; ok {
				matched++
			}
		}
		pct := decimal.NewFromInt(int64(matched * 100)).Div(decimal.NewFromInt(int64(len(names)))).Round(0)
		if pct.LessThan(minRecommendationMatch) {
			continue
		}
		recommendations = append(recommendations, GoalRecommendation{
			Goal:            goal,
			MatchedSkills:   matched,
			RequiredSkills:  len(names),
			MatchPercentage: pct,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchPercentage.GreaterThan(recommendations[j].MatchPercentage)
	})
	return recommendations, nil
}
