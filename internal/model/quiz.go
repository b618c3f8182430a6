package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionType is the answer format of a quiz question.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeTrueFalse      QuestionType = "true_false"
)

// QuizQuestion belongs to one skill's quiz.
type QuizQuestion struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	SkillID       uint           `json:"skill_id" gorm:"not null;index"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	QuestionType  QuestionType   `json:"question_type" gorm:"type:varchar(20);not null"`
	CorrectAnswer string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Options       datatypes.JSON `json:"options"`
	CreatedAt     time.Time      `json:"created_at"`
}

// QuizResult is one scored quiz attempt.
type QuizResult struct {
	ID             uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID         uint            `json:"user_id" gorm:"not null;index"`
	SkillID        uint            `json:"skill_id" gorm:"not null;index"`
	Score          int             `json:"score" gorm:"not null"`
	TotalQuestions int             `json:"total_questions" gorm:"not null"`
	Percentage     decimal.Decimal `json:"percentage" gorm:"type:decimal(5,2);not null"`
	Level          SkillLevel      `json:"level" gorm:"not null"`
	CreatedAt      time.Time       `json:"created_at"`

	// Relations
	Skill *Skill `json:"skill,omitempty" gorm:"foreignKey:SkillID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *QuizResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
