package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skillaudit/backend/models"
	"skillaudit/backend/store"
)

// testEnv wires the full service graph over an in-memory store with a fixed
// clock and sequential assignment ids.
type testEnv struct {
	Store       store.Store
	Gaps        *GapService
	Programs    *ProgramService
	Propagation *PropagationService
	Assignments *AssignmentService
	Sync        *SyncService
	Recommend   *RecommendationService
	Now         time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// An in-memory sqlite database exists per connection.
	sqlDB.SetMaxOpenConns(1)

	st, err := store.NewGormStore(db)
	require.NoError(t, err)

	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	gaps := NewGapService(st)
	programs := NewProgramService(st)
	programs.Now = clock
	propagation := NewPropagationService(st)
	propagation.Now = clock

	assignments := NewAssignmentService(st, gaps, programs, propagation, nil)
	assignments.Now = clock
	var seq atomic.Int64
	assignments.NewID = func() string { return fmt.Sprintf("T%d", seq.Add(1)) }

	return &testEnv{
		Store:       st,
		Gaps:        gaps,
		Programs:    programs,
		Propagation: propagation,
		Assignments: assignments,
		Sync:        NewSyncService(st),
		Recommend:   NewRecommendationService(gaps, programs),
		Now:         now,
	}
}

func (e *testEnv) seedEmployee(t *testing.T, id, name string) {
	t.Helper()
	emp := models.Employee{Name: name, Department: "Finance", Position: "Analyst", CreatedAt: e.Now}
	require.NoError(t, e.Store.Set(context.Background(), store.Employees, id, emp.Doc()))
}

func (e *testEnv) seedProgram(t *testing.T, id, title string, covered []string, active bool) {
	t.Helper()
	p := models.TrainingProgram{
		Title:         title,
		Provider:      "Coursera",
		SkillsCovered: covered,
		IsActive:      active,
		CreatedAt:     e.Now,
	}
	p.ApplyDefaults()
	require.NoError(t, e.Store.Set(context.Background(), store.TrainingPrograms, id, p.Doc()))
}

func (e *testEnv) seedSkill(t *testing.T, employeeID, skillID, name, level string) {
	t.Helper()
	sk := models.Skill{EmployeeID: employeeID, Name: name, Level: level, CreatedAt: e.Now}
	require.NoError(t, e.Store.Set(context.Background(), store.EmployeeSkills(employeeID), skillID, sk.Doc()))
}
