package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"careerpath/internal/errors"
	"careerpath/internal/logger"
	"careerpath/internal/model"
	"careerpath/internal/observability"
	"careerpath/internal/repository"
	"careerpath/internal/roadmap"
)

// StatusUpdateResult is returned by a task status change.
type StatusUpdateResult struct {
	Task   *model.RoadmapTask     `json:"task"`
	Skills []model.SkillLevelView `json:"skills"`
}

// RoadmapService generates, displays and tracks a user's learning roadmap.
type RoadmapService interface {
	Generate(ctx context.Context, userID uint) (*roadmap.Roadmap, error)
	View(ctx context.Context, userID uint) (*roadmap.Roadmap, error)
	UpdateTaskStatus(ctx context.Context, userID uint, taskID uuid.UUID, status model.TaskStatus) (*StatusUpdateResult, error)
}

type roadmapService struct {
	skillRepo    repository.SkillRepository
	goalRepo     repository.GoalRepository
	resourceRepo repository.ResourceRepository
	roadmapRepo  repository.RoadmapRepository
	planner      *roadmap.Planner
	log          *logger.Logger
	tracer       trace.Tracer
	now          func() time.Time
	// userMutexes serializes regeneration and status updates per user.
	userMutexes sync.Map
}

// NewRoadmapService creates a new roadmap service.
func NewRoadmapService(
	skillRepo repository.SkillRepository,
	goalRepo repository.GoalRepository,
	resourceRepo repository.ResourceRepository,
	roadmapRepo repository.RoadmapRepository,
	planner *roadmap.Planner,
	log *logger.Logger,
) RoadmapService {
	if planner == nil {
		planner = roadmap.NewPlanner(nil)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &roadmapService{
		skillRepo:    skillRepo,
		goalRepo:     goalRepo,
		resourceRepo: resourceRepo,
		roadmapRepo:  roadmapRepo,
		planner:      planner,
		log:          log.With("component", "roadmap_service"),
		tracer:       observability.Tracer(),
		now:          time.Now,
	}
}

// getMutex gets or creates a mutex for a user.
func (s *roadmapService) getMutex(userID uint) *sync.Mutex {
	value, _ := s.userMutexes.LoadOrStore(userID, &sync.Mutex{})
	return value.(*sync.Mutex)
}

// Generate replaces the user's roadmap with a freshly planned one.
func (s *roadmapService) Generate(ctx context.Context, userID uint) (*roadmap.Roadmap, error) {
	ctx, span := s.tracer.Start(ctx, "RoadmapService.Generate", trace.WithAttributes(attribute.Int64("user.id", int64(userID))))
	defer span.End()

	mutex := s.getMutex(userID)
	mutex.Lock()
	defer mutex.Unlock()

	rm, err := s.generate(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return rm, nil
}

// generate expects the caller to hold the user's mutex.
func (s *roadmapService) generate(ctx context.Context, userID uint) (*roadmap.Roadmap, error) {
	userSkills, err := s.skillRepo.ListUserSkills(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load skill ledger: %w", err)
	}
	goals, err := s.goalRepo.ActiveGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load active goals: %w", err)
	}
	resources, err := s.resourceRepo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}

	plan, err := s.planner.Plan(goals, roadmap.LedgerFromSkills(userSkills), roadmap.NewResourcePool(resources))
	if err != nil {
		s.log.Info("roadmap not generated", "user_id", userID, "reason", err.Error())
		return nil, err
	}

	summaries := plan.Summaries()
	payload, err := json.Marshal(summaries)
	if err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}
	generation := &model.RoadmapGeneration{
		Fingerprint: roadmap.Fingerprint(goalIDs(goals)),
		Plan:        datatypes.JSON(payload),
		GeneratedAt: s.now().UTC(),
	}
	tasks := plan.Tasks(userID)
	if err := s.roadmapRepo.ReplacePlan(ctx, userID, tasks, generation); err != nil {
		s.log.Error("replace roadmap failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("replace roadmap: %w", err)
	}
	persisted, err := s.roadmapRepo.ListTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	rm := roadmap.Reconstruct(generation.GeneratedAt, summaries, persisted)

	s.log.Info("roadmap generated",
		"user_id", userID,
		"goals", len(plan.Goals),
		"tasks", len(tasks),
	)
	return rm, nil
}

// View reconstructs the persisted roadmap from the task rows. A plan is generated only
// when none exists yet or the set of active goals changed since the last generation.
func (s *roadmapService) View(ctx context.Context, userID uint) (*roadmap.Roadmap, error) {
	ctx, span := s.tracer.Start(ctx, "RoadmapService.View", trace.WithAttributes(attribute.Int64("user.id", int64(userID))))
	defer span.End()

	mutex := s.getMutex(userID)
	mutex.Lock()
	defer mutex.Unlock()

	rm, err := s.view(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return rm, nil
}

func (s *roadmapService) view(ctx context.Context, userID uint) (*roadmap.Roadmap, error) {
	generation, err := s.roadmapRepo.FindGeneration(ctx, userID)
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load generation: %w", err)
	}

	goals, err := s.goalRepo.ActiveGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load active goals: %w", err)
	}
	if generation == nil || generation.Fingerprint != roadmap.Fingerprint(goalIDs(goals)) {
		return s.generate(ctx, userID)
	}

	var summaries []roadmap.GoalSummary
	if len(generation.Plan) > 0 {
		if err := json.Unmarshal(generation.Plan, &summaries); err != nil {
			// Rows alone are enough to rebuild the grouping.
			s.log.Warn("undecodable plan metadata", "user_id", userID, "error", err)
			summaries = nil
		}
	}
	tasks, err := s.roadmapRepo.ListTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return roadmap.Reconstruct(generation.GeneratedAt, summaries, tasks), nil
}

// UpdateTaskStatus changes one task's status and, when it completes a task backed by a
// resource, recomputes the user's level for that resource's skill in the same transaction.
func (s *roadmapService) UpdateTaskStatus(ctx context.Context, userID uint, taskID uuid.UUID, status model.TaskStatus) (*StatusUpdateResult, error) {
	ctx, span := s.tracer.Start(ctx, "RoadmapService.UpdateTaskStatus", trace.WithAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.String("task.id", taskID.String()),
		attribute.String("task.status", string(status)),
	))
	defer span.End()

	if !status.Valid() {
		return nil, errors.ErrInvalidStatus
	}

	mutex := s.getMutex(userID)
	mutex.Lock()
	defer mutex.Unlock()

	var result StatusUpdateResult
	err := s.roadmapRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.RoadmapRepository) error {
		task, err := repo.FindTask(ctx, userID, taskID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrTaskNotFound
			}
			return fmt.Errorf("find task: %w", err)
		}

		if err := repo.UpdateTaskStatus(ctx, userID, taskID, status); err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrTaskNotFound
			}
			return fmt.Errorf("update task: %w", err)
		}
		task.Status = status

		if status == model.TaskStatusCompleted && task.Resource != nil && task.Resource.SkillID != 0 {
			progress, err := repo.SkillProgress(ctx, userID, task.Resource.SkillID)
			if err != nil {
				return fmt.Errorf("skill progress: %w", err)
			}
			level := roadmap.LevelFromProgress(int(progress.Completed), int(progress.Total))
			if err := repo.UpsertLevel(ctx, userID, task.Resource.SkillID, level); err != nil {
				return fmt.Errorf("upsert skill level: %w", err)
			}
		}

		skills, err := repo.ReferencedSkillLevels(ctx, userID)
		if err != nil {
			return fmt.Errorf("skill levels: %w", err)
		}
		result.Task = task
		result.Skills = skills
		return nil
	})
	if err != nil {
		if !stderrors.Is(err, errors.ErrTaskNotFound) {
			s.log.Error("task status update failed", "user_id", userID, "task_id", taskID, "error", err)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.log.Info("task status updated", "user_id", userID, "task_id", taskID, "status", status)
	return &result, nil
}

func goalIDs(goals []model.CareerGoal) []uint {
	ids := make([]uint, 0, len(goals))
	for _, g := range goals {
		ids = append(ids, g.ID)
	}
	return ids
}
