package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SkillLevel is the numeric proficiency scale shared by assessments and goal requirements.
type SkillLevel int

const (
	LevelNone         SkillLevel = 0
	LevelBeginner     SkillLevel = 1
	LevelIntermediate SkillLevel = 2
	LevelAdvanced     SkillLevel = 3

	// MaxSkillLevel is the level every goal skill is implicitly required at.
	MaxSkillLevel = LevelAdvanced
)

var levelNames = map[SkillLevel]string{
	LevelNone:         "none",
	LevelBeginner:     "beginner",
	LevelIntermediate: "intermediate",
	LevelAdvanced:     "advanced",
}

func (l SkillLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return strconv.Itoa(int(l))
}

// Valid reports whether l is on the 0..3 scale.
func (l SkillLevel) Valid() bool {
	return l >= LevelNone && l <= MaxSkillLevel
}

// ParseSkillLevel accepts a level name ("beginner") or its number ("1").
func ParseSkillLevel(s string) (SkillLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for level, name := range levelNames {
		if name == s {
			return level, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && SkillLevel(n).Valid() {
		return SkillLevel(n), nil
	}
	return LevelNone, fmt.Errorf("invalid skill level %q", s)
}

// MarshalJSON encodes the level by name.
func (l SkillLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts either a name or a number.
func (l *SkillLevel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParseSkillLevel(name)
		if err != nil {
			return err
		}
		*l = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid skill level %s", string(data))
	}
	if !SkillLevel(n).Valid() {
		return fmt.Errorf("invalid skill level %d", n)
	}
	*l = SkillLevel(n)
	return nil
}

// Skill is static catalog data.
type Skill struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Category    string    `json:"category" gorm:"size:100;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserSkill is one row of a user's skill ledger. At most one row per (user, skill).
type UserSkill struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_skill"`
	SkillID   uint       `json:"skill_id" gorm:"not null;uniqueIndex:idx_user_skill"`
	Level     SkillLevel `json:"level" gorm:"not null;default:0"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations
	Skill *Skill `json:"skill,omitempty" gorm:"foreignKey:SkillID"`
}

// SkillLevelView is a skill name paired with the user's level (0 when unassessed).
type SkillLevelView struct {
	SkillID   uint       `json:"skill_id"`
	SkillName string     `json:"skill_name"`
	Category  string     `json:"category,omitempty"`
	Level     SkillLevel `json:"level"`
}
