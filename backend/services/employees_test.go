package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillaudit/backend/models"
)

func newEmployeeService(env *testEnv) *EmployeeService {
	svc := NewEmployeeService(env.Store, env.Gaps)
	svc.Now = func() time.Time { return env.Now }
	return svc
}

func TestEmployeeCreateAndLoad(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := newEmployeeService(env)

	id, err := svc.Create(ctx, models.Employee{Name: "Alice", Department: "Finance", Position: "Analyst"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = svc.Create(ctx, models.Employee{Department: "Finance"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)

	emp, err := svc.Load(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, "Alice", emp.Name)
	assert.NotNil(t, emp.Skills, "subcollection slices are never nil")
	assert.NotNil(t, emp.Qualifications)
	assert.NotNil(t, emp.Trainings)
	assert.Zero(t, emp.Metrics.AverageSkillLevel)

	missing, err := svc.Load(ctx, "ghost")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEmployeeLoadComputesMetrics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := newEmployeeService(env)

	id, err := svc.Create(ctx, models.Employee{Name: "Alice"})
	require.NoError(t, err)
	_, err = svc.AddSkill(ctx, models.Skill{EmployeeID: id, Name: "Financial Modeling", Level: "Advanced"})
	require.NoError(t, err)

	emp, err := svc.Load(ctx, id)
	require.NoError(t, err)
	require.Len(t, emp.Skills, 1)
	assert.InDelta(t, 4.0, emp.Metrics.AverageSkillLevel, 1e-9)
	assert.Positive(t, emp.Metrics.TotalSkillGaps, "every uncovered catalog skill counts")
}

func TestEmployeeSkillLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := newEmployeeService(env)

	empID, err := svc.Create(ctx, models.Employee{Name: "Alice"})
	require.NoError(t, err)

	skillID, err := svc.AddSkill(ctx, models.Skill{EmployeeID: empID, Name: "Data Analysis", Level: "Basic"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateSkill(ctx, empID, skillID, map[string]any{"Level": "Advanced"}))
	skillList, err := env.Gaps.EmployeeSkills(ctx, empID)
	require.NoError(t, err)
	require.Len(t, skillList, 1)
	assert.Equal(t, "Advanced", skillList[0].Level)
	assert.Equal(t, "Data Analysis", skillList[0].Name, "merge leaves untouched fields alone")

	require.NoError(t, svc.DeleteSkill(ctx, empID, skillID))
	skillList, err = env.Gaps.EmployeeSkills(ctx, empID)
	require.NoError(t, err)
	assert.Empty(t, skillList)
}

func TestEmployeeQualifications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := newEmployeeService(env)

	empID, err := svc.Create(ctx, models.Employee{Name: "Alice"})
	require.NoError(t, err)

	qualID, err := svc.AddQualification(ctx, models.Qualification{
		EmployeeID: empID,
		Name:       "CFA Level I",
		Issuer:     "CFA Institute",
	})
	require.NoError(t, err)

	quals, err := svc.Qualifications(ctx, empID)
	require.NoError(t, err)
	require.Len(t, quals, 1)
	assert.Equal(t, "CFA Level I", quals[0].Name)

	require.NoError(t, svc.DeleteQualification(ctx, qualID))
	quals, err = svc.Qualifications(ctx, empID)
	require.NoError(t, err)
	assert.Empty(t, quals)
}

func TestEmployeeUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := newEmployeeService(env)

	id, err := svc.Create(ctx, models.Employee{Name: "Alice", Department: "Finance"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, id, map[string]any{"Department": "Risk"}))
	emp, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Risk", emp.Department)
	assert.Equal(t, "Alice", emp.Name)

	assert.ErrorIs(t, svc.Update(ctx, "ghost", map[string]any{"Name": "X"}), ErrNotFound)

	require.NoError(t, svc.Delete(ctx, id))
	emp, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, emp)
	assert.ErrorIs(t, svc.Delete(ctx, id), ErrNotFound)
}
