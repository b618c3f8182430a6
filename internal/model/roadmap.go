package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskStatus represents the progress of a roadmap task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// RoadmapTask is one persisted unit of a user's plan. The full set is replaced on regeneration.
type RoadmapTask struct {
	ID              uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID          uint       `json:"user_id" gorm:"not null;index:idx_task_user_week"`
	CareerGoalID    *uint      `json:"career_goal_id,omitempty" gorm:"index"`
	Week            int        `json:"week" gorm:"not null;index:idx_task_user_week"`
	Position        int        `json:"position" gorm:"not null;default:0"`
	SkillFocus      string     `json:"skill_focus" gorm:"size:255"`
	TaskDescription string     `json:"task_description" gorm:"type:text;not null"`
	ResourceID      *uint      `json:"resource_id,omitempty" gorm:"index"`
	Status          TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relations
	Resource *Resource `json:"resource,omitempty" gorm:"foreignKey:ResourceID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *RoadmapTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// RoadmapGeneration records the plan metadata of a user's latest generation.
// There is at most one row per user; it is replaced together with the tasks.
type RoadmapGeneration struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	Fingerprint string         `json:"fingerprint" gorm:"size:64;not null"`
	Plan        datatypes.JSON `json:"plan"`
	GeneratedAt time.Time      `json:"generated_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (g *RoadmapGeneration) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
