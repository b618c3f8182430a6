package roadmap

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	apperrors "careerpath/internal/errors"
	"careerpath/internal/model"
)

// ResourceRef is the part of a catalog resource a plan carries.
type ResourceRef struct {
	ID         uint               `json:"id"`
	Title      string             `json:"title"`
	URL        string             `json:"url"`
	Type       model.ResourceType `json:"type"`
	Difficulty string             `json:"difficulty,omitempty"`
	Skill      string             `json:"skill,omitempty"`
}

// RefFromResource converts a catalog row. Skill names come from the preloaded relation when present.
func RefFromResource(r model.Resource) ResourceRef {
	ref := ResourceRef{
		ID:         r.ID,
		Title:      r.Title,
		URL:        r.URL,
		Type:       r.Type,
		Difficulty: r.Difficulty,
	}
	if r.Skill != nil {
		ref.Skill = r.Skill.Name
	}
	return ref
}

// ResourcePool groups resources by skill name, each list in catalog (ascending id) order.
type ResourcePool map[string][]ResourceRef

// NewResourcePool groups resources with a preloaded Skill relation.
func NewResourcePool(resources []model.Resource) ResourcePool {
	pool := make(ResourcePool)
	for _, r := range resources {
		if r.Skill == nil {
			continue
		}
		pool[r.Skill.Name] = append(pool[r.Skill.Name], RefFromResource(r))
	}
	for name := range pool {
		list := pool[name]
		sort.SliceStable(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}
	return pool
}

// PlannedTask is one task of a week before it is persisted.
type PlannedTask struct {
	Description string `json:"description"`
	Skill       string `json:"skill,omitempty"`
	ResourceID  *uint  `json:"resource_id,omitempty"`
}

// Week is one entry of a goal's plan. Generic weeks span a single calendar week;
// curriculum blocks span several.
type Week struct {
	Week       int           `json:"week"`
	StartWeek  int           `json:"start_week"`
	EndWeek    int           `json:"end_week"`
	SkillFocus string        `json:"skill_focus"`
	GapLevel   int           `json:"gap_level"`
	Resources  []ResourceRef `json:"resources,omitempty"`
	Tasks      []PlannedTask `json:"tasks"`
}

// GoalPlan is the plan for one active goal.
type GoalPlan struct {
	GoalID        uint       `json:"goal_id"`
	GoalName      string     `json:"goal_name"`
	EstimatedTime string     `json:"estimated_time,omitempty"`
	SalaryRange   string     `json:"salary_range,omitempty"`
	Strategy      Strategy   `json:"strategy"`
	TotalWeeks    int        `json:"total_weeks"`
	Gaps          []SkillGap `json:"skill_gaps"`
	Weeks         []Week     `json:"weekly_plan"`
}

// Plan is the in-memory result of one generation.
type Plan struct {
	Goals []GoalPlan `json:"goals"`
}

// Planner builds plans. It holds no per-user state and is safe for concurrent use
// as long as its Phraser is.
type Planner struct {
	phraser Phraser
}

// NewPlanner creates a planner using phraser for generic weeks.
func NewPlanner(phraser Phraser) *Planner {
	if phraser == nil {
		phraser = NewRandomPhraser(0)
	}
	return &Planner{phraser: phraser}
}

// PlanGoal builds the plan for one goal. It returns (nil, nil) when the goal has
// nothing to plan, which callers treat as "skip this goal".
func (p *Planner) PlanGoal(goal model.CareerGoal, ledger Ledger, pool ResourcePool) (*GoalPlan, error) {
	strategy := StrategyFor(goal)
	plan := &GoalPlan{
		GoalID:        goal.ID,
		GoalName:      goal.Name,
		EstimatedTime: goal.EstimatedTime,
		SalaryRange:   goal.SalaryRange,
		Strategy:      strategy,
	}

	if strategy.IsFixed() {
		curriculum, ok := LookupCurriculum(strategy.CurriculumID)
		if !ok {
			return nil, fmt.Errorf("goal %q: unknown curriculum %q", goal.Name, strategy.CurriculumID)
		}
		plan.TotalWeeks = curriculum.TotalWeeks()
		plan.Gaps, plan.Weeks = curriculum.Build(ledger, pool)
		return plan, nil
	}

	gaps := CalculateGaps(ledger, goal.RequiredSkills)
	if len(gaps) == 0 {
		return nil, nil
	}
	SortGaps(gaps)
	plan.Gaps = gaps
	plan.TotalWeeks = EstimateTotalWeeks(goal.EstimatedTime)
	plan.Weeks = Allocate(gaps, plan.TotalWeeks, pool, p.phraser)
	return plan, nil
}

// Plan builds one GoalPlan per goal in the order given. It fails with ErrNoActiveGoals
// when goals is empty and ErrEmptyPlan when every goal was skipped.
func (p *Planner) Plan(goals []model.CareerGoal, ledger Ledger, pool ResourcePool) (*Plan, error) {
	if len(goals) == 0 {
		return nil, apperrors.ErrNoActiveGoals
	}
	plan := &Plan{}
	for _, goal := range goals {
		gp, err := p.PlanGoal(goal, ledger, pool)
		if err != nil {
			return nil, err
		}
		if gp == nil || len(gp.Weeks) == 0 {
			continue
		}
		plan.Goals = append(plan.Goals, *gp)
	}
	if len(plan.Goals) == 0 {
		return nil, apperrors.ErrEmptyPlan
	}
	return plan, nil
}

// Tasks flattens the plan into pending task rows for userID.
func (p *Plan) Tasks(userID uint) []model.RoadmapTask {
	var rows []model.RoadmapTask
	for _, goal := range p.Goals {
		goalID := goal.GoalID
		for _, week := range goal.Weeks {
			for i, t := range week.Tasks {
				focus := t.Skill
				if focus == "" {
					focus = week.SkillFocus
				}
				row := model.RoadmapTask{
					UserID:          userID,
					Week:            week.Week,
					Position:        i,
					SkillFocus:      focus,
					TaskDescription: t.Description,
					Status:          model.TaskStatusPending,
				}
				if goalID != 0 {
					id := goalID
					row.CareerGoalID = &id
				}
				if t.ResourceID != nil {
					id := *t.ResourceID
					row.ResourceID = &id
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// WeekSummary is the per-week metadata stored alongside the task rows.
type WeekSummary struct {
	Week       int    `json:"week"`
	StartWeek  int    `json:"start_week"`
	EndWeek    int    `json:"end_week"`
	SkillFocus string `json:"skill_focus"`
	GapLevel   int    `json:"gap_level"`
}

// GoalSummary is what reconstruction needs beyond the task rows.
type GoalSummary struct {
	GoalID        uint          `json:"goal_id"`
	GoalName      string        `json:"goal_name"`
	EstimatedTime string        `json:"estimated_time,omitempty"`
	SalaryRange   string        `json:"salary_range,omitempty"`
	Strategy      Strategy      `json:"strategy"`
	TotalWeeks    int           `json:"total_weeks"`
	Gaps          []SkillGap    `json:"skill_gaps"`
	Weeks         []WeekSummary `json:"weeks"`
}

// Summaries strips tasks and resources from the plan.
func (p *Plan) Summaries() []GoalSummary {
	out := make([]GoalSummary, 0, len(p.Goals))
	for _, g := range p.Goals {
		s := GoalSummary{
			GoalID:        g.GoalID,
			GoalName:      g.GoalName,
			EstimatedTime: g.EstimatedTime,
			SalaryRange:   g.SalaryRange,
			Strategy:      g.Strategy,
			TotalWeeks:    g.TotalWeeks,
			Gaps:          g.Gaps,
		}
		for _, w := range g.Weeks {
			s.Weeks = append(s.Weeks, WeekSummary{
				Week:       w.Week,
				StartWeek:  w.StartWeek,
				EndWeek:    w.EndWeek,
				SkillFocus: w.SkillFocus,
				GapLevel:   w.GapLevel,
			})
		}
		out = append(out, s)
	}
	return out
}

// Fingerprint identifies a set of active goals independent of order.
func Fingerprint(goalIDs []uint) string {
	ids := append([]uint(nil), goalIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, ",")))
	return hex.EncodeToString(sum[:])
}
