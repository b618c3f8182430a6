package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanStrategy names the algorithm a goal's roadmap is built with.
type PlanStrategy string

const (
	// StrategyUnset defers to the legacy name match.
	StrategyUnset           PlanStrategy = ""
	StrategyGeneric         PlanStrategy = "generic"
	StrategyFixedCurriculum PlanStrategy = "fixed_curriculum"
)

// CareerGoal is static reference data describing a target role.
type CareerGoal struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`
	// RequiredSkills is a comma separated list of skill names.
	RequiredSkills string       `json:"required_skills" gorm:"type:text"`
	EstimatedTime  string       `json:"estimated_time" gorm:"size:100"`
	SalaryRange    string       `json:"salary_range" gorm:"size:100"`
	Strategy       PlanStrategy `json:"strategy,omitempty" gorm:"size:32"`
	CurriculumID   string       `json:"curriculum_id,omitempty" gorm:"size:64"`
	CreatedAt      time.Time    `json:"created_at"`
}

// RequiredSkillNames splits RequiredSkills, trimming blanks and dropping duplicates.
func (g *CareerGoal) RequiredSkillNames() []string {
	if strings.TrimSpace(g.RequiredSkills) == "" {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, part := range strings.Split(g.RequiredSkills, ",") {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// GoalStatus represents the lifecycle of a user's goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusAbandoned GoalStatus = "abandoned"
)

// Valid reports whether s is a known goal status.
func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusAbandoned:
		return true
	}
	return false
}

// UserCareerGoal links a user to a catalog goal. Only active goals feed roadmap generation.
type UserCareerGoal struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	CareerGoalID uint           `json:"career_goal_id" gorm:"not null;index"`
	TargetDate   *time.Time     `json:"target_date,omitempty"`
	Status       GoalStatus     `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// Relations
	CareerGoal *CareerGoal `json:"career_goal,omitempty" gorm:"foreignKey:CareerGoalID"`
}

// BeforeCreate sets UUID before creating the record.
func (g *UserCareerGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
