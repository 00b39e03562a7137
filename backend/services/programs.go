package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"skillaudit/backend/models"
	"skillaudit/backend/store"
)

// ProgramService is the training program catalog accessor.
type ProgramService struct {
	Store store.Store
	Now   func() time.Time
}

func NewProgramService(st store.Store) *ProgramService {
	return &ProgramService{Store: st, Now: time.Now}
}

func (s *ProgramService) Create(ctx context.Context, program models.TrainingProgram) (string, error) {
	if program.Title == "" {
		return "", &ValidationError{Field: "title", Reason: "required"}
	}
	program.ApplyDefaults()
	if program.DurationHours < models.MinDurationHours || program.DurationHours > models.MaxDurationHours {
		return "", &ValidationError{Field: "durationHours", Reason: "must be between 1 and 500"}
	}
	if program.CreatedAt.IsZero() {
		program.CreatedAt = s.Now()
	}
	id, err := s.Store.Add(ctx, store.TrainingPrograms, program.Doc())
	if err != nil {
		return "", &PersistenceError{Op: "create training program", Err: err}
	}
	return id, nil
}

// Get returns nil when the program does not exist.
func (s *ProgramService) Get(ctx context.Context, id string) (*models.TrainingProgram, error) {
	doc, err := s.Store.Get(ctx, store.TrainingPrograms, id)
	if err != nil {
		return nil, fmt.Errorf("load training program %s: %w", id, err)
	}
	if doc == nil {
		return nil, nil
	}
	program := models.ProgramFromDoc(id, doc)
	return &program, nil
}

// List returns all programs sorted by id so callers iterating the catalog see
// a stable order regardless of how the store returns rows.
func (s *ProgramService) List(ctx context.Context) ([]models.TrainingProgram, error) {
	docs, err := s.Store.List(ctx, store.TrainingPrograms)
	if err != nil {
		return nil, fmt.Errorf("list training programs: %w", err)
	}
	programs := make([]models.TrainingProgram, 0, len(docs))
	for _, d := range docs {
		programs = append(programs, models.ProgramFromDoc(d.ID, d.Data))
	}
	sort.Slice(programs, func(i, j int) bool { return programs[i].ID < programs[j].ID })
	return programs, nil
}

func (s *ProgramService) Update(ctx context.Context, id string, patch map[string]any) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("training program %s: %w", id, ErrNotFound)
	}
	if err := s.Store.SetMerge(ctx, store.TrainingPrograms, id, patch); err != nil {
		return &PersistenceError{Op: "update training program", Err: err}
	}
	return nil
}

// Delete removes a program unless any assignment still references it. The
// guard is checked here at delete time; the store has no foreign keys.
func (s *ProgramService) Delete(ctx context.Context, id string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("training program %s: %w", id, ErrNotFound)
	}
	refs, err := s.Store.Query(ctx, store.Trainings, "TrainingProgramId", id)
	if err != nil {
		return fmt.Errorf("check assignments for program %s: %w", id, err)
	}
	if len(refs) > 0 {
		return fmt.Errorf("training program %s: %w", id, ErrProgramInUse)
	}
	if err := s.Store.Delete(ctx, store.TrainingPrograms, id); err != nil {
		return &PersistenceError{Op: "delete training program", Err: err}
	}
	return nil
}
