package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"careerpath/internal/db"
	"careerpath/internal/model"
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
	sql, python model.Skill
	sqlRes      []model.Resource
	pyRes       model.Resource
	goal        model.CareerGoal
}

func seedFixture(t *testing.T, gdb *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		sql:    model.Skill{Name: "SQL", Category: "Data"},
		python: model.Skill{Name: "Python", Category: "Programming"},
	}
	require.NoError(t, gdb.Create(&f.sql).Error)
	require.NoError(t, gdb.Create(&f.python).Error)

	f.sqlRes = []model.Resource{
		{SkillID: f.sql.ID, Title: "SQL 101", Type: model.ResourceTypeCourse, URL: "https://example.com/sql-101", Difficulty: "beginner"},
		{SkillID: f.sql.ID, Title: "SQL Tuning", Type: model.ResourceTypePDF, URL: "https://example.com/sql-tuning", Difficulty: "advanced"},
	}
	require.NoError(t, gdb.Create(&f.sqlRes).Error)
	f.pyRes = model.Resource{SkillID: f.python.ID, Title: "Python Basics", Type: model.ResourceTypeVideo, URL: "https://example.com/py"}
	require.NoError(t, gdb.Create(&f.pyRes).Error)

	f.goal = model.CareerGoal{Name: "Database Admin", RequiredSkills: "SQL, Python", EstimatedTime: "4-8 weeks"}
	require.NoError(t, gdb.Create(&f.goal).Error)
	return f
}

func uintPtr(v uint) *uint { return &v }
