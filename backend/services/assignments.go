package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"skillaudit/backend/models"
	"skillaudit/backend/skills"
	"skillaudit/backend/store"
)

// startProgressFloor is the progress an assignment jumps to when started.
const startProgressFloor = 10

// defaultDueDays is the due-date window when the caller gives none.
const defaultDueDays = 30

// AssignmentService drives the training assignment lifecycle
// (Pending -> Accepted -> InProgress -> Completed, Cancelled from any
// non-completed state) and keeps the canonical record and the per-employee
// mirror in step. All mutations funnel through writeBoth; no call site writes
// either copy directly.
type AssignmentService struct {
	Store       store.Store
	Gaps        *GapService
	Programs    *ProgramService
	Propagation *PropagationService
	Logger      *log.Logger

	// Injected so tests control time and ids.
	Now   func() time.Time
	NewID func() string
}

func NewAssignmentService(st store.Store, gaps *GapService, programs *ProgramService, propagation *PropagationService, logger *log.Logger) *AssignmentService {
	return &AssignmentService{
		Store:       st,
		Gaps:        gaps,
		Programs:    programs,
		Propagation: propagation,
		Logger:      logger,
		Now:         time.Now,
		NewID:       uuid.NewString,
	}
}

type CreateAssignmentInput struct {
	TrainingProgramID string
	EmployeeID        string
	AssignedBy        string
	AssignedReason    string
	DueDate           time.Time
}

// Create validates the ids, captures the employee's gap against the program's
// covered skills and writes both copies. Returns the generated assignment id.
func (s *AssignmentService) Create(ctx context.Context, in CreateAssignmentInput) (string, error) {
	if in.TrainingProgramID == "" {
		return "", &ValidationError{Field: "trainingProgramId", Reason: "required"}
	}
	if in.EmployeeID == "" {
		return "", &ValidationError{Field: "employeeId", Reason: "required"}
	}

	empDoc, err := s.Store.Get(ctx, store.Employees, in.EmployeeID)
	if err != nil {
		return "", &PersistenceError{Op: "create assignment", Err: err}
	}
	if empDoc == nil {
		return "", fmt.Errorf("employee %s: %w", in.EmployeeID, ErrNotFound)
	}
	program, err := s.Programs.Get(ctx, in.TrainingProgramID)
	if err != nil {
		return "", &PersistenceError{Op: "create assignment", Err: err}
	}
	if program == nil {
		return "", fmt.Errorf("training program %s: %w", in.TrainingProgramID, ErrNotFound)
	}

	skillList, err := s.Gaps.EmployeeSkills(ctx, in.EmployeeID)
	if err != nil {
		return "", &PersistenceError{Op: "create assignment", Err: err}
	}

	now := s.Now()
	due := in.DueDate
	if due.IsZero() {
		due = now.AddDate(0, 0, defaultDueDays)
	}
	a := &models.TrainingAssignment{
		ID:                s.NewID(),
		TrainingProgramID: in.TrainingProgramID,
		EmployeeID:        in.EmployeeID,
		Title:             program.Title,
		Provider:          program.Provider,
		Description:       program.Description,
		Status:            models.StatusPending,
		Progress:          0,
		AssignedBy:        in.AssignedBy,
		AssignedReason:    in.AssignedReason,
		AssignedDate:      now,
		DueDate:           due,
		SkillGapBefore:    skills.GapScore(skillList, program.SkillsCovered),
		CreatedAt:         now,
	}
	if err := s.writeBoth(ctx, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

// Get returns nil when the assignment does not exist.
func (s *AssignmentService) Get(ctx context.Context, id string) (*models.TrainingAssignment, error) {
	doc, err := s.Store.Get(ctx, store.Trainings, id)
	if err != nil {
		return nil, fmt.Errorf("load assignment %s: %w", id, err)
	}
	if doc == nil {
		return nil, nil
	}
	return models.AssignmentFromDoc(id, doc), nil
}

func (s *AssignmentService) ListByEmployee(ctx context.Context, employeeID string) ([]models.TrainingAssignment, error) {
	docs, err := s.Store.Query(ctx, store.Trainings, "EmployeeId", employeeID)
	if err != nil {
		return nil, fmt.Errorf("list assignments for employee %s: %w", employeeID, err)
	}
	out := make([]models.TrainingAssignment, 0, len(docs))
	for _, d := range docs {
		out = append(out, *models.AssignmentFromDoc(d.ID, d.Data))
	}
	return out, nil
}

func (s *AssignmentService) List(ctx context.Context) ([]models.TrainingAssignment, error) {
	docs, err := s.Store.List(ctx, store.Trainings)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	out := make([]models.TrainingAssignment, 0, len(docs))
	for _, d := range docs {
		out = append(out, *models.AssignmentFromDoc(d.ID, d.Data))
	}
	return out, nil
}

// UpdateProgress records progress and infers completion. Out-of-range values
// are a caller error by contract; they are clamped to [0,100] here rather
// than rejected. Reaching 100 auto-completes the assignment unless it is
// already Completed or was Cancelled. Cancelled is terminal and the inference
// never resurrects it, though the progress value itself is stored. An
// explicit status argument overrides the inference; explicit Completed and
// Cancelled get the same stamping as Complete and Cancel, with actor recorded
// as the canceller.
func (s *AssignmentService) UpdateProgress(ctx context.Context, id string, progress int, explicitStatus, actor string) (*models.TrainingAssignment, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("assignment %s: %w", id, ErrNotFound)
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	prior := a.Status
	a.Progress = progress
	if explicitStatus != "" {
		status := models.ParseStatus(explicitStatus)
		if status == models.StatusUnknown {
			return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", explicitStatus)}
		}
		switch status {
		case models.StatusCancelled:
			if err := s.markCancelled(a, actor); err != nil {
				return nil, err
			}
		case models.StatusCompleted:
			a.Status = status
			if prior != models.StatusCompleted {
				a.CompletedDate = s.Now()
				a.Progress = 100
			}
		default:
			a.Status = status
		}
	} else if progress >= 100 && prior != models.StatusCompleted && prior != models.StatusCancelled {
		a.Status = models.StatusCompleted
		a.CompletedDate = s.Now()
	}

	if err := s.writeBoth(ctx, a); err != nil {
		return nil, err
	}
	if err := s.propagateIfCompleted(ctx, a, prior); err != nil {
		return a, err
	}
	return a, nil
}

// Accept is idempotent: accepting an already accepted assignment just
// re-stamps the accepted date. No precondition on the prior status.
func (s *AssignmentService) Accept(ctx context.Context, id string) (*models.TrainingAssignment, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("assignment %s: %w", id, ErrNotFound)
	}
	a.Status = models.StatusAccepted
	a.AcceptedDate = s.Now()
	if err := s.writeBoth(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Start moves the assignment to InProgress with the fixed progress floor.
func (s *AssignmentService) Start(ctx context.Context, id string) (*models.TrainingAssignment, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("assignment %s: %w", id, ErrNotFound)
	}
	a.Status = models.StatusInProgress
	a.Progress = startProgressFloor
	if a.StartDate.IsZero() {
		a.StartDate = s.Now()
	}
	if err := s.writeBoth(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Complete finishes the assignment, stores the certificate references,
// captures the closing gap score and propagates skill bumps. Propagation runs
// at most once per completion: a repeated Complete re-stamps the record but
// the prior-status guard skips the bump. If propagation fails after the
// assignment write, the degraded outcome is logged and the error surfaced,
// never swallowed.
func (s *AssignmentService) Complete(ctx context.Context, id, certificateFileName, certificateURL string) (*models.TrainingAssignment, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("assignment %s: %w", id, ErrNotFound)
	}

	prior := a.Status
	a.Status = models.StatusCompleted
	a.Progress = 100
	a.CompletedDate = s.Now()
	if certificateFileName != "" {
		a.CertificateFileName = certificateFileName
	}
	if certificateURL != "" {
		a.CertificateURL = certificateURL
	}

	program, err := s.Programs.Get(ctx, a.TrainingProgramID)
	if err != nil {
		return nil, &PersistenceError{Op: "complete assignment", Err: err}
	}
	if program != nil {
		skillList, err := s.Gaps.EmployeeSkills(ctx, a.EmployeeID)
		if err != nil {
			return nil, &PersistenceError{Op: "complete assignment", Err: err}
		}
		a.SkillGapAfter = skills.GapScore(skillList, program.SkillsCovered)
	}

	if err := s.writeBoth(ctx, a); err != nil {
		return nil, err
	}
	if err := s.propagateIfCompleted(ctx, a, prior); err != nil {
		return a, err
	}
	return a, nil
}

// Cancel marks the assignment cancelled. Completed assignments stay
// completed.
func (s *AssignmentService) Cancel(ctx context.Context, id, cancelledBy string) (*models.TrainingAssignment, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("assignment %s: %w", id, ErrNotFound)
	}
	if err := s.markCancelled(a, cancelledBy); err != nil {
		return nil, err
	}
	if err := s.writeBoth(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// markCancelled applies the cancellation stamp. Every path that cancels an
// assignment goes through here so CancelledDate and CancelledBy stay
// consistent. Completed assignments stay completed.
func (s *AssignmentService) markCancelled(a *models.TrainingAssignment, cancelledBy string) error {
	if a.Status == models.StatusCompleted {
		return &ValidationError{Field: "status", Reason: "completed assignments cannot be cancelled"}
	}
	a.Status = models.StatusCancelled
	a.CancelledDate = s.Now()
	a.CancelledBy = cancelledBy
	return nil
}

// Delete removes both copies. A missing mirror (empty employee id, or a
// document the mobile client never saw) is not an error.
func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	a, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("assignment %s: %w", id, ErrNotFound)
	}
	if err := s.Store.Delete(ctx, store.Trainings, id); err != nil {
		return &PersistenceError{Op: "delete assignment", Half: "canonical", Err: err}
	}
	if a.EmployeeID != "" {
		if err := s.Store.Delete(ctx, store.EmployeeTrainings(a.EmployeeID), id); err != nil {
			return &PersistenceError{Op: "delete assignment", Half: "mirror", Err: err}
		}
	}
	return nil
}

// AssignResult is the outcome of one fan-out sub-assignment.
type AssignResult struct {
	EmployeeID   string
	AssignmentID string
	Err          error
}

// AssignToMany fans Create out over the employees concurrently and waits for
// all of them. Best effort: one failing employee never aborts or rolls back
// the others; each employee gets their own result entry, in input order.
func (s *AssignmentService) AssignToMany(ctx context.Context, programID string, employeeIDs []string, assignedBy, reason string) []AssignResult {
	results := make([]AssignResult, len(employeeIDs))
	var wg sync.WaitGroup
	for i, employeeID := range employeeIDs {
		wg.Add(1)
		go func(i int, employeeID string) {
			defer wg.Done()
			id, err := s.Create(ctx, CreateAssignmentInput{
				TrainingProgramID: programID,
				EmployeeID:        employeeID,
				AssignedBy:        assignedBy,
				AssignedReason:    reason,
			})
			results[i] = AssignResult{EmployeeID: employeeID, AssignmentID: id, Err: err}
		}(i, employeeID)
	}
	wg.Wait()
	return results
}

// writeBoth persists the canonical record and the per-employee mirror as one
// logical operation. The mirror write gets one retry before the failure is
// surfaced with the failed half named. The canonical write is never rolled
// back; the mirror synchronizer is the compensating path for drift.
func (s *AssignmentService) writeBoth(ctx context.Context, a *models.TrainingAssignment) error {
	if err := s.Store.Set(ctx, store.Trainings, a.ID, a.Doc()); err != nil {
		return &PersistenceError{Op: "write assignment " + a.ID, Half: "canonical", Err: err}
	}
	if a.EmployeeID == "" {
		return nil
	}
	collection := store.EmployeeTrainings(a.EmployeeID)
	mirror := a.MirrorDoc()
	err := s.Store.Set(ctx, collection, a.ID, mirror)
	if err != nil {
		s.logf("mirror write for assignment %s failed, retrying: %v", a.ID, err)
		err = s.Store.Set(ctx, collection, a.ID, mirror)
	}
	if err != nil {
		return &PersistenceError{Op: "write assignment " + a.ID, Half: "mirror", Err: err}
	}
	return nil
}

// propagateIfCompleted applies skill propagation exactly when this mutation
// transitioned the assignment into Completed.
func (s *AssignmentService) propagateIfCompleted(ctx context.Context, a *models.TrainingAssignment, prior models.AssignmentStatus) error {
	if a.Status != models.StatusCompleted || prior == models.StatusCompleted {
		return nil
	}
	if err := s.Propagation.ApplyCompletion(ctx, a.EmployeeID, a.TrainingProgramID); err != nil {
		s.logf("assignment %s marked completed but skill propagation failed: %v", a.ID, err)
		return fmt.Errorf("assignment %s completed, skill propagation failed: %w", a.ID, err)
	}
	return nil
}

func (s *AssignmentService) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
