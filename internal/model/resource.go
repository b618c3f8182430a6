package model

import "time"

// ResourceType is the medium of a learning resource.
type ResourceType string

const (
	ResourceTypeVideo  ResourceType = "video"
	ResourceTypePDF    ResourceType = "pdf"
	ResourceTypeCourse ResourceType = "course"
)

// Resource is a learning resource attached to one skill.
type Resource struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	SkillID      uint         `json:"skill_id" gorm:"not null;index"`
	Title        string       `json:"title" gorm:"size:255;not null"`
	Description  string       `json:"description" gorm:"type:text"`
	Type         ResourceType `json:"type" gorm:"type:varchar(20);not null"`
	URL          string       `json:"url" gorm:"size:512;not null"`
	ThumbnailURL string       `json:"thumbnail_url,omitempty" gorm:"size:512"`
	// Difficulty is optional: beginner, intermediate or advanced.
	Difficulty string    `json:"difficulty,omitempty" gorm:"size:20"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Skill *Skill `json:"skill,omitempty" gorm:"foreignKey:SkillID"`
}
