package services

import (
	"context"
	"fmt"

	"skillaudit/backend/models"
	"skillaudit/backend/skills"
	"skillaudit/backend/store"
)

// GapService reads an employee's skill subcollection and runs the pure gap
// computation over it.
type GapService struct {
	Store store.Store
}

func NewGapService(st store.Store) *GapService {
	return &GapService{Store: st}
}

// ComputeGaps returns one entry per catalog row in catalog order. An unknown
// employee id yields a nil result, not an error; an employee with zero skills
// yields all-zero current levels.
func (s *GapService) ComputeGaps(ctx context.Context, employeeID string) ([]skills.SkillGap, error) {
	doc, err := s.Store.Get(ctx, store.Employees, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load employee %s: %w", employeeID, err)
	}
	if doc == nil {
		return nil, nil
	}
	skillList, err := s.EmployeeSkills(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return skills.ComputeGaps(skillList), nil
}

// EmployeeSkills loads the employee's skill records. Always returns a non-nil
// slice.
func (s *GapService) EmployeeSkills(ctx context.Context, employeeID string) ([]models.Skill, error) {
	docs, err := s.Store.List(ctx, store.EmployeeSkills(employeeID))
	if err != nil {
		return nil, fmt.Errorf("load skills for employee %s: %w", employeeID, err)
	}
	out := make([]models.Skill, 0, len(docs))
	for _, d := range docs {
		sk := models.SkillFromDoc(d.ID, d.Data)
		if sk.EmployeeID == "" {
			sk.EmployeeID = employeeID
		}
		out = append(out, sk)
	}
	return out, nil
}
