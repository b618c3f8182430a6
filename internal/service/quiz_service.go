package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"careerpath/internal/errors"
	"careerpath/internal/logger"
	"careerpath/internal/model"
	"careerpath/internal/repository"
)

var (
	advancedThreshold     = decimal.NewFromInt(80)
	intermediateThreshold = decimal.NewFromInt(50)
)

// QuizService scores skill quizzes and feeds the result into the skill ledger.
type QuizService interface {
	Questions(ctx context.Context, skillID uint) ([]model.QuizQuestion, error)
	Submit(ctx context.Context, userID, skillID uint, answers map[uint]string) (*model.QuizResult, error)
	Results(ctx context.Context, userID uint) ([]model.QuizResult, error)
}

type quizService struct {
	repo repository.QuizRepository
	log  *logger.Logger
}

// NewQuizService creates a new quiz service.
func NewQuizService(repo repository.QuizRepository, log *logger.Logger) QuizService {
	if log == nil {
		log = logger.Nop()
	}
	return &quizService{repo: repo, log: log.With("component", "quiz_service")}
}

func (s *quizService) Questions(ctx context.Context, skillID uint) ([]model.QuizQuestion, error) {
	questions, err := s.repo.Questions(ctx, skillID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, errors.ErrNoQuizQuestions
	}
	return questions, nil
}

// LevelForPercentage maps a quiz score to a skill level.
func LevelForPercentage(pct decimal.Decimal) model.SkillLevel {
	switch {
	case pct.GreaterThanOrEqual(advancedThreshold):
		return model.LevelAdvanced
	case pct.GreaterThanOrEqual(intermediateThreshold):
		return model.LevelIntermediate
	default:
		return model.LevelBeginner
	}
}

// Submit scores answers (keyed by question id) against every question of the skill.
// Unanswered questions count as wrong. The level and the result are stored together.
func (s *quizService) Submit(ctx context.Context, userID, skillID uint, answers map[uint]string) (*model.QuizResult, error) {
	var result *model.QuizResult
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.QuizRepository) error {
		questions, err := repo.Questions(ctx, skillID)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		if len(questions) == 0 {
			return errors.ErrNoQuizQuestions
		}

		score := 0
		for _, q := range questions {
			if answer, ok := answers[q.ID]; ok && strings.EqualFold(strings.TrimSpace(answer), q.CorrectAnswer) {
				score++
			}
		}
		pct := decimal.NewFromInt(int64(score * 100)).
			DivRound(decimal.NewFromInt(int64(len(questions))), 2)
		level := LevelForPercentage(pct)

		if err := repo.UpsertLevel(ctx, userID, skillID, level); err != nil {
			return fmt.Errorf("upsert skill level: %w", err)
		}
		result = &model.QuizResult{
			UserID:         userID,
			SkillID:        skillID,
			Score:          score,
			TotalQuestions: len(questions),
			Percentage:     pct,
			Level:          level,
		}
		if err := repo.CreateResult(ctx, result); err != nil {
			return fmt.Errorf("create quiz result: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("quiz submitted", "user_id", userID, "skill_id", skillID, "score", result.Score, "level", result.Level.String())
	return result, nil
}

func (s *quizService) Results(ctx context.Context, userID uint) ([]model.QuizResult, error) {
	return s.repo.ListResults(ctx, userID)
}
