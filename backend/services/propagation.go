package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillaudit/backend/models"
	"skillaudit/backend/skills"
	"skillaudit/backend/store"
)

// halfYearExperience is the fixed experience credit for one completed
// training, expressed in years.
const halfYearExperience = 0.5

// PropagationService raises an employee's skill levels when a training they
// were assigned completes.
type PropagationService struct {
	Store store.Store
	Now   func() time.Time
}

func NewPropagationService(st store.Store) *PropagationService {
	return &PropagationService{Store: st, Now: time.Now}
}

// ApplyCompletion bumps every skill the program covers by one ladder step, or
// creates the skill at Intermediate when the employee lacks it: finishing a
// course already constitutes intermediate competence, so new records do not
// start at Beginner.
//
// Not idempotent: a second call bumps again. The assignment lifecycle guards
// invocation with a prior-status check so each completion propagates at most
// once.
func (s *PropagationService) ApplyCompletion(ctx context.Context, employeeID, programID string) error {
	if employeeID == "" {
		return &ValidationError{Field: "employeeId", Reason: "required"}
	}
	if programID == "" {
		return &ValidationError{Field: "trainingProgramId", Reason: "required"}
	}

	progDoc, err := s.Store.Get(ctx, store.TrainingPrograms, programID)
	if err != nil {
		return fmt.Errorf("load training program %s: %w", programID, err)
	}
	if progDoc == nil {
		return fmt.Errorf("training program %s: %w", programID, ErrNotFound)
	}
	program := models.ProgramFromDoc(programID, progDoc)

	collection := store.EmployeeSkills(employeeID)
	docs, err := s.Store.List(ctx, collection)
	if err != nil {
		return fmt.Errorf("load skills for employee %s: %w", employeeID, err)
	}
	existing := make(map[string]models.Skill, len(docs))
	for _, d := range docs {
		sk := models.SkillFromDoc(d.ID, d.Data)
		existing[strings.ToLower(sk.Name)] = sk
	}

	for _, name := range program.SkillsCovered {
		if sk, ok := existing[strings.ToLower(name)]; ok {
			patch := map[string]any{
				"Level":           skills.NextLevel(sk.Level),
				"YearsExperience": sk.YearsExperience + halfYearExperience,
			}
			if err := s.Store.SetMerge(ctx, collection, sk.ID, patch); err != nil {
				return &PersistenceError{Op: fmt.Sprintf("bump skill %q", name), Err: err}
			}
			continue
		}
		created := models.Skill{
			EmployeeID:      employeeID,
			Name:            name,
			Level:           "Intermediate",
			Category:        skills.CategoryFor(name),
			YearsExperience: halfYearExperience,
			CreatedAt:       s.Now(),
		}
		if _, err := s.Store.Add(ctx, collection, created.Doc()); err != nil {
			return &PersistenceError{Op: fmt.Sprintf("create skill %q", name), Err: err}
		}
	}
	return nil
}
