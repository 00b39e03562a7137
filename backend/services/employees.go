package services

import (
	"context"
	"fmt"
	"time"

	"skillaudit/backend/models"
	"skillaudit/backend/skills"
	"skillaudit/backend/store"
)

// EmployeeService owns the employee aggregate: the employee document plus its
// independently writable skill and qualification records and the training
// mirror subcollection.
type EmployeeService struct {
	Store store.Store
	Gaps  *GapService
	Now   func() time.Time
}

func NewEmployeeService(st store.Store, gaps *GapService) *EmployeeService {
	return &EmployeeService{Store: st, Gaps: gaps, Now: time.Now}
}

func (s *EmployeeService) Create(ctx context.Context, emp models.Employee) (string, error) {
	if emp.Name == "" {
		return "", &ValidationError{Field: "name", Reason: "required"}
	}
	if emp.CreatedAt.IsZero() {
		emp.CreatedAt = s.Now()
	}
	id, err := s.Store.Add(ctx, store.Employees, emp.Doc())
	if err != nil {
		return "", &PersistenceError{Op: "create employee", Err: err}
	}
	return id, nil
}

// Get returns the bare employee document, nil when absent.
func (s *EmployeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	doc, err := s.Store.Get(ctx, store.Employees, id)
	if err != nil {
		return nil, fmt.Errorf("load employee %s: %w", id, err)
	}
	if doc == nil {
		return nil, nil
	}
	emp := models.EmployeeFromDoc(id, doc)
	return &emp, nil
}

// Load returns the full aggregate: skills, qualifications and the training
// mirror, with metrics recomputed. The subcollection slices are never nil.
func (s *EmployeeService) Load(ctx context.Context, id string) (*models.Employee, error) {
	emp, err := s.Get(ctx, id)
	if err != nil || emp == nil {
		return emp, err
	}
	if emp.Skills, err = s.Gaps.EmployeeSkills(ctx, id); err != nil {
		return nil, err
	}
	if emp.Qualifications, err = s.Qualifications(ctx, id); err != nil {
		return nil, err
	}
	if emp.Trainings, err = s.Trainings(ctx, id); err != nil {
		return nil, err
	}
	emp.Metrics = skills.CalculateMetrics(emp.Skills)
	return emp, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	docs, err := s.Store.List(ctx, store.Employees)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	out := make([]models.Employee, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.EmployeeFromDoc(d.ID, d.Data))
	}
	return out, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, patch map[string]any) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	if err := s.Store.SetMerge(ctx, store.Employees, id, patch); err != nil {
		return &PersistenceError{Op: "update employee", Err: err}
	}
	return nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	if err := s.Store.Delete(ctx, store.Employees, id); err != nil {
		return &PersistenceError{Op: "delete employee", Err: err}
	}
	return nil
}

// Trainings reads the employee's training list from the per-employee mirror,
// the read pattern the mirror exists for.
func (s *EmployeeService) Trainings(ctx context.Context, employeeID string) ([]models.TrainingAssignment, error) {
	docs, err := s.Store.List(ctx, store.EmployeeTrainings(employeeID))
	if err != nil {
		return nil, fmt.Errorf("load trainings for employee %s: %w", employeeID, err)
	}
	out := make([]models.TrainingAssignment, 0, len(docs))
	for _, d := range docs {
		a := models.AssignmentFromMirror(d.ID, d.Data)
		if a.EmployeeID == "" {
			a.EmployeeID = employeeID
		}
		out = append(out, *a)
	}
	return out, nil
}

func (s *EmployeeService) AddSkill(ctx context.Context, sk models.Skill) (string, error) {
	if sk.EmployeeID == "" {
		return "", &ValidationError{Field: "employeeId", Reason: "required"}
	}
	if sk.Name == "" {
		return "", &ValidationError{Field: "name", Reason: "required"}
	}
	if sk.CreatedAt.IsZero() {
		sk.CreatedAt = s.Now()
	}
	id, err := s.Store.Add(ctx, store.EmployeeSkills(sk.EmployeeID), sk.Doc())
	if err != nil {
		return "", &PersistenceError{Op: "add skill", Err: err}
	}
	return id, nil
}

func (s *EmployeeService) UpdateSkill(ctx context.Context, employeeID, skillID string, patch map[string]any) error {
	if err := s.Store.SetMerge(ctx, store.EmployeeSkills(employeeID), skillID, patch); err != nil {
		return &PersistenceError{Op: "update skill", Err: err}
	}
	return nil
}

func (s *EmployeeService) DeleteSkill(ctx context.Context, employeeID, skillID string) error {
	if err := s.Store.Delete(ctx, store.EmployeeSkills(employeeID), skillID); err != nil {
		return &PersistenceError{Op: "delete skill", Err: err}
	}
	return nil
}

func (s *EmployeeService) Qualifications(ctx context.Context, employeeID string) ([]models.Qualification, error) {
	docs, err := s.Store.Query(ctx, store.Qualifications, "EmployeeId", employeeID)
	if err != nil {
		return nil, fmt.Errorf("load qualifications for employee %s: %w", employeeID, err)
	}
	out := make([]models.Qualification, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.QualificationFromDoc(d.ID, d.Data))
	}
	return out, nil
}

func (s *EmployeeService) AddQualification(ctx context.Context, q models.Qualification) (string, error) {
	if q.EmployeeID == "" {
		return "", &ValidationError{Field: "employeeId", Reason: "required"}
	}
	if q.Name == "" {
		return "", &ValidationError{Field: "name", Reason: "required"}
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = s.Now()
	}
	id, err := s.Store.Add(ctx, store.Qualifications, q.Doc())
	if err != nil {
		return "", &PersistenceError{Op: "add qualification", Err: err}
	}
	return id, nil
}

func (s *EmployeeService) DeleteQualification(ctx context.Context, id string) error {
	if err := s.Store.Delete(ctx, store.Qualifications, id); err != nil {
		return &PersistenceError{Op: "delete qualification", Err: err}
	}
	return nil
}
