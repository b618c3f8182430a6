package roadmap

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"careerpath/internal/model"
)

// TaskView is a persisted task joined with its resource and skill.
type TaskView struct {
	ID          uuid.UUID        `json:"id"`
	Description string           `json:"description"`
	Status      model.TaskStatus `json:"status"`
	Skill       string           `json:"skill,omitempty"`
	Resource    *ResourceRef     `json:"resource,omitempty"`
}

// WeekView is one week of a reconstructed plan.
type WeekView struct {
	Week       int        `json:"week"`
	StartWeek  int        `json:"start_week"`
	EndWeek    int        `json:"end_week"`
	SkillFocus string     `json:"skill_focus"`
	GapLevel   int        `json:"gap_level"`
	Tasks      []TaskView `json:"tasks"`
	Completed  int        `json:"completed_tasks"`
	Total      int        `json:"total_tasks"`
}

// GoalView is one goal of a reconstructed plan.
type GoalView struct {
	GoalID        uint       `json:"goal_id"`
	GoalName      string     `json:"goal_name"`
	EstimatedTime string     `json:"estimated_time,omitempty"`
	SalaryRange   string     `json:"salary_range,omitempty"`
	Strategy      Strategy   `json:"strategy"`
	TotalWeeks    int        `json:"total_weeks"`
	Gaps          []SkillGap `json:"skill_gaps"`
	Weeks         []WeekView `json:"weekly_plan"`
	Completed     int        `json:"completed_tasks"`
	Total         int        `json:"total_tasks"`
}

// Roadmap is the display shape of a user's persisted plan.
type Roadmap struct {
	GeneratedAt time.Time  `json:"generated_at"`
	Goals       []GoalView `json:"goals"`
	Completed   int        `json:"completed_tasks"`
	Total       int        `json:"total_tasks"`
}

func taskGoalID(t model.RoadmapTask) uint {
	if t.CareerGoalID == nil {
		return 0
	}
	return *t.CareerGoalID
}

// Reconstruct regroups flat task rows by goal then week. Goal and week metadata come
// from the stored summaries; tasks whose goal or week has no summary still show up,
// after the known goals, with metadata derived from the rows.
// Task resources should have their Skill relation preloaded.
func Reconstruct(generatedAt time.Time, summaries []GoalSummary, tasks []model.RoadmapTask) *Roadmap {
	rank := make(map[uint]int, len(summaries))
	goalMeta := make(map[uint]GoalSummary, len(summaries))
	weekMeta := make(map[uint]map[int]WeekSummary, len(summaries))
	for i, s := range summaries {
		rank[s.GoalID] = i
		goalMeta[s.GoalID] = s
		weeks := make(map[int]WeekSummary, len(s.Weeks))
		for _, w := range s.Weeks {
			weeks[w.Week] = w
		}
		weekMeta[s.GoalID] = weeks
	}

	sorted := append([]model.RoadmapTask(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		gi, gj := taskGoalID(sorted[i]), taskGoalID(sorted[j])
		ri, oki := rank[gi]
		rj, okj := rank[gj]
		if !oki {
			ri = len(summaries)
		}
		if !okj {
			rj = len(summaries)
		}
		if ri != rj {
			return ri < rj
		}
		if gi != gj {
			return gi < gj
		}
		if sorted[i].Week != sorted[j].Week {
			return sorted[i].Week < sorted[j].Week
		}
		return sorted[i].Position < sorted[j].Position
	})

	rm := &Roadmap{GeneratedAt: generatedAt}
	var goal *GoalView
	var week *WeekView
	for _, t := range sorted {
		gid := taskGoalID(t)
		if goal == nil || goal.GoalID != gid {
			meta, ok := goalMeta[gid]
			rm.Goals = append(rm.Goals, GoalView{GoalID: gid})
			goal = &rm.Goals[len(rm.Goals)-1]
			if ok {
				goal.GoalName = meta.GoalName
				goal.EstimatedTime = meta.EstimatedTime
				goal.SalaryRange = meta.SalaryRange
				goal.Strategy = meta.Strategy
				goal.TotalWeeks = meta.TotalWeeks
				goal.Gaps = meta.Gaps
			}
			week = nil
		}
		if week == nil || week.Week != t.Week {
			wv := WeekView{Week: t.Week, StartWeek: t.Week, EndWeek: t.Week, SkillFocus: t.SkillFocus}
			if meta, ok := weekMeta[gid][t.Week]; ok {
				wv.StartWeek = meta.StartWeek
				wv.EndWeek = meta.EndWeek
				wv.SkillFocus = meta.SkillFocus
				wv.GapLevel = meta.GapLevel
			}
			goal.Weeks = append(goal.Weeks, wv)
			week = &goal.Weeks[len(goal.Weeks)-1]
		}

		view := TaskView{
			ID:          t.ID,
			Description: t.TaskDescription,
			Status:      t.Status,
			Skill:       t.SkillFocus,
		}
		if t.Resource != nil {
			ref := RefFromResource(*t.Resource)
			view.Resource = &ref
			if ref.Skill != "" {
				view.Skill = ref.Skill
			}
		}
		week.Tasks = append(week.Tasks, view)
		week.Total++
		goal.Total++
		rm.Total++
		if t.Status == model.TaskStatusCompleted {
			week.Completed++
			goal.Completed++
			rm.Completed++
		}
	}
	return rm
}
