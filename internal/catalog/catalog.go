// Package catalog holds the reference data (skills, goals, resources, quizzes)
// the service ships with and writes it into the database.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"careerpath/internal/logger"
	"careerpath/internal/model"
	"careerpath/internal/roadmap"
)

//go:embed seed.yaml
var seedYAML []byte

type SkillSeed struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

type GoalSeed struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	RequiredSkills string `yaml:"required_skills"`
	EstimatedTime  string `yaml:"estimated_time"`
	SalaryRange    string `yaml:"salary_range"`
	Strategy       string `yaml:"strategy"`
	CurriculumID   string `yaml:"curriculum_id"`
}

type ResourceSeed struct {
	Skill        string `yaml:"skill"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Type         string `yaml:"type"`
	URL          string `yaml:"url"`
	ThumbnailURL string `yaml:"thumbnail_url"`
	Difficulty   string `yaml:"difficulty"`
}

type QuestionSeed struct {
	Skill    string   `yaml:"skill"`
	Question string   `yaml:"question"`
	Type     string   `yaml:"type"`
	Answer   string   `yaml:"answer"`
	Options  []string `yaml:"options"`
}

// Catalog is the parsed seed file.
type Catalog struct {
	Skills    []SkillSeed    `yaml:"skills"`
	Goals     []GoalSeed     `yaml:"goals"`
	Resources []ResourceSeed `yaml:"resources"`
	Questions []QuestionSeed `yaml:"quiz_questions"`
}

// Stats counts rows inserted by one Seed call.
type Stats struct {
	Skills    int
	Goals     int
	Resources int
	Questions int
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(seedYAML)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every reference resolves and every enum value is known.
func (c *Catalog) Validate() error {
	skills := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		if strings.TrimSpace(s.Name) == "" {
			return errors.New("catalog: skill without name")
		}
		if skills[s.Name] {
			return fmt.Errorf("catalog: duplicate skill %q", s.Name)
		}
		skills[s.Name] = true
	}

	for _, g := range c.Goals {
		switch model.PlanStrategy(g.Strategy) {
		case model.StrategyUnset, model.StrategyGeneric:
		case model.StrategyFixedCurriculum:
			if _, ok := roadmap.LookupCurriculum(g.CurriculumID); !ok {
				return fmt.Errorf("catalog: goal %q: unknown curriculum %q", g.Name, g.CurriculumID)
			}
		default:
			return fmt.Errorf("catalog: goal %q: unknown strategy %q", g.Name, g.Strategy)
		}
		goal := model.CareerGoal{RequiredSkills: g.RequiredSkills}
		for _, name := range goal.RequiredSkillNames() {
			if !skills[name] {
				return fmt.Errorf("catalog: goal %q requires unknown skill %q", g.Name, name)
			}
		}
	}

	for _, r := range c.Resources {
		if !skills[r.Skill] {
			return fmt.Errorf("catalog: resource %q references unknown skill %q", r.Title, r.Skill)
		}
		switch model.ResourceType(r.Type) {
		case model.ResourceTypeVideo, model.ResourceTypePDF, model.ResourceTypeCourse:
		default:
			return fmt.Errorf("catalog: resource %q has unknown type %q", r.Title, r.Type)
		}
		if r.Difficulty != "" {
			if _, err := model.ParseSkillLevel(r.Difficulty); err != nil {
				return fmt.Errorf("catalog: resource %q: %w", r.Title, err)
			}
		}
	}

	for _, q := range c.Questions {
		if !skills[q.Skill] {
			return fmt.Errorf("catalog: question %q references unknown skill %q", q.Question, q.Skill)
		}
		answerListed := false
		for _, o := range q.Options {
			if o == q.Answer {
				answerListed = true
			}
		}
		if !answerListed {
			return fmt.Errorf("catalog: question %q: answer is not among the options", q.Question)
		}
	}
	return nil
}

// Seed inserts whatever part of c is missing from the database in one transaction.
// Existing rows are left untouched, so running it repeatedly is safe.
func Seed(ctx context.Context, db *gorm.DB, c *Catalog, log *logger.Logger) (Stats, error) {
	var stats Stats
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skillIDs := make(map[string]uint, len(c.Skills))
		for _, s := range c.Skills {
			skill := model.Skill{Name: s.Name}
			res := tx.Where(model.Skill{Name: s.Name}).
				Attrs(model.Skill{Category: s.Category, Description: s.Description}).
				FirstOrCreate(&skill)
			if res.Error != nil {
				return fmt.Errorf("seed skill %q: %w", s.Name, res.Error)
			}
			stats.Skills += int(res.RowsAffected)
			skillIDs[s.Name] = skill.ID
		}

		for _, g := range c.Goals {
			goal := model.CareerGoal{Name: g.Name}
			res := tx.Where(model.CareerGoal{Name: g.Name}).
				Attrs(model.CareerGoal{
					Description:    g.Description,
					RequiredSkills: g.RequiredSkills,
					EstimatedTime:  g.EstimatedTime,
					SalaryRange:    g.SalaryRange,
					Strategy:       model.PlanStrategy(g.Strategy),
					CurriculumID:   g.CurriculumID,
				}).
				FirstOrCreate(&goal)
			if res.Error != nil {
				return fmt.Errorf("seed goal %q: %w", g.Name, res.Error)
			}
			stats.Goals += int(res.RowsAffected)
		}

		for _, r := range c.Resources {
			resource := model.Resource{SkillID: skillIDs[r.Skill], URL: r.URL}
			res := tx.Where(model.Resource{SkillID: resource.SkillID, URL: r.URL}).
				Attrs(model.Resource{
					Title:        r.Title,
					Description:  r.Description,
					Type:         model.ResourceType(r.Type),
					ThumbnailURL: r.ThumbnailURL,
					Difficulty:   r.Difficulty,
				}).
				FirstOrCreate(&resource)
			if res.Error != nil {
				return fmt.Errorf("seed resource %q: %w", r.Title, res.Error)
			}
			stats.Resources += int(res.RowsAffected)
		}

		for _, q := range c.Questions {
			options, err := json.Marshal(q.Options)
			if err != nil {
				return fmt.Errorf("encode options: %w", err)
			}
			question := model.QuizQuestion{SkillID: skillIDs[q.Skill], QuestionText: q.Question}
			res := tx.Where(model.QuizQuestion{SkillID: question.SkillID, QuestionText: q.Question}).
				Attrs(model.QuizQuestion{
					QuestionType:  model.QuestionType(q.Type),
					CorrectAnswer: q.Answer,
					Options:       datatypes.JSON(options),
				}).
				FirstOrCreate(&question)
			if res.Error != nil {
				return fmt.Errorf("seed question %q: %w", q.Question, res.Error)
			}
			stats.Questions += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}

	log.Info("catalog seeded",
		"skills", stats.Skills,
		"goals", stats.Goals,
		"resources", stats.Resources,
		"quiz_questions", stats.Questions,
	)
	return stats, nil
}
