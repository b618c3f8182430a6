package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"careerpath/internal/db"
	"careerpath/internal/logger"
	"careerpath/internal/model"
	"careerpath/internal/repository"
	"careerpath/internal/roadmap"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenInMemory(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

type fixture struct {
	db          *gorm.DB
	sql, python model.Skill
	sqlRes      []model.Resource
	pyRes       model.Resource
	dbaGoal     model.CareerGoal
	pyGoal      model.CareerGoal
}

// seedFixture writes two skills, three resources and two single-skill goals.
func seedFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		db:     newTestDB(t),
		sql:    model.Skill{Name: "SQL", Category: "Data"},
		python: model.Skill{Name: "Python", Category: "Programming"},
	}
	require.NoError(t, f.db.Create(&f.sql).Error)
	require.NoError(t, f.db.Create(&f.python).Error)

	f.sqlRes = []model.Resource{
		{SkillID: f.sql.ID, Title: "SQL 101", Type: model.ResourceTypeCourse, URL: "https://example.com/sql-101", Difficulty: "beginner"},
		{SkillID: f.sql.ID, Title: "SQL Tuning", Type: model.ResourceTypePDF, URL: "https://example.com/sql-tuning", Difficulty: "advanced"},
	}
	require.NoError(t, f.db.Create(&f.sqlRes).Error)
	f.pyRes = model.Resource{SkillID: f.python.ID, Title: "Python Basics", Type: model.ResourceTypeVideo, URL: "https://example.com/py"}
	require.NoError(t, f.db.Create(&f.pyRes).Error)

	f.dbaGoal = model.CareerGoal{Name: "Database Admin", RequiredSkills: "SQL", EstimatedTime: "4-8 weeks"}
	f.pyGoal = model.CareerGoal{Name: "Python Developer", RequiredSkills: "Python", EstimatedTime: "2-3 weeks"}
	require.NoError(t, f.db.Create(&f.dbaGoal).Error)
	require.NoError(t, f.db.Create(&f.pyGoal).Error)
	return f
}

func (f fixture) addGoal(t *testing.T, userID, goalID uint) model.UserCareerGoal {
	t.Helper()
	g := model.UserCareerGoal{UserID: userID, CareerGoalID: goalID, Status: model.GoalStatusActive}
	require.NoError(t, repository.NewGoalRepository(f.db).CreateUserGoal(context.Background(), &g))
	return g
}

func (f fixture) roadmapService(roadmapRepo repository.RoadmapRepository) RoadmapService {
	if roadmapRepo == nil {
		roadmapRepo = repository.NewRoadmapRepository(f.db)
	}
	return NewRoadmapService(
		repository.NewSkillRepository(f.db),
		repository.NewGoalRepository(f.db),
		repository.NewResourceRepository(f.db),
		roadmapRepo,
		roadmap.NewPlanner(roadmap.FixedPhraser{Count: 2}),
		logger.Nop(),
	)
}

func allTasks(rm *roadmap.Roadmap) []roadmap.TaskView {
	var out []roadmap.TaskView
	for _, g := range rm.Goals {
		for _, w := range g.Weeks {
			out = append(out, w.Tasks...)
		}
	}
	return out
}
