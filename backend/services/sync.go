package services

import (
	"context"
	"fmt"

	"skillaudit/backend/models"
	"skillaudit/backend/store"
)

// SyncService reconciles the per-employee training mirror, which the mobile
// client writes independently, back into the canonical trainings collection.
type SyncService struct {
	Store store.Store
}

func NewSyncService(st store.Store) *SyncService {
	return &SyncService{Store: st}
}

// SyncReport counts what one reconciliation pass changed.
type SyncReport struct {
	Created int `json:"created"`
	Merged  int `json:"merged"`
}

// SyncEmployeeMirrorToCanonical walks the employee's training mirror. Mirror
// documents with no canonical counterpart are inserted as full copies;
// existing canonical documents are merge-updated with the mirror-owned
// fields, mirror winning on conflicts. The mobile client is source of truth
// for the fields it writes (certificate uploads done outside this system,
// mobile-side progress). Never deletes. Idempotent: documents already in step
// are skipped, so a second pass with no new mirror writes reports zero
// changes.
func (s *SyncService) SyncEmployeeMirrorToCanonical(ctx context.Context, employeeID string) (SyncReport, error) {
	var report SyncReport
	if employeeID == "" {
		return report, &ValidationError{Field: "employeeId", Reason: "required"}
	}
	mirrors, err := s.Store.List(ctx, store.EmployeeTrainings(employeeID))
	if err != nil {
		return report, fmt.Errorf("list training mirror for employee %s: %w", employeeID, err)
	}
	for _, m := range mirrors {
		canonical, err := s.Store.Get(ctx, store.Trainings, m.ID)
		if err != nil {
			return report, fmt.Errorf("load canonical training %s: %w", m.ID, err)
		}
		if canonical == nil {
			a := models.AssignmentFromMirror(m.ID, m.Data)
			if a.EmployeeID == "" {
				a.EmployeeID = employeeID
			}
			if err := s.Store.Set(ctx, store.Trainings, m.ID, a.Doc()); err != nil {
				return report, &PersistenceError{Op: "sync training " + m.ID, Half: "canonical", Err: err}
			}
			report.Created++
			continue
		}
		patch := models.CanonicalPatchFromMirror(m.Data)
		if owner, _ := patch["EmployeeId"].(string); owner == "" {
			patch["EmployeeId"] = employeeID
		}
		if !patchChanges(canonical, patch) {
			continue
		}
		if err := s.Store.SetMerge(ctx, store.Trainings, m.ID, patch); err != nil {
			return report, &PersistenceError{Op: "sync training " + m.ID, Half: "canonical", Err: err}
		}
		report.Merged++
	}
	return report, nil
}

// SyncOneTrainingToMirror refreshes one mirror document from the canonical
// record, for repairing a mirror the mobile client lost.
func (s *SyncService) SyncOneTrainingToMirror(ctx context.Context, trainingID string) error {
	doc, err := s.Store.Get(ctx, store.Trainings, trainingID)
	if err != nil {
		return fmt.Errorf("load training %s: %w", trainingID, err)
	}
	if doc == nil {
		return fmt.Errorf("training %s: %w", trainingID, ErrNotFound)
	}
	a := models.AssignmentFromDoc(trainingID, doc)
	if a.EmployeeID == "" {
		// No owner, nothing to mirror.
		return nil
	}
	err = s.Store.Set(ctx, store.EmployeeTrainings(a.EmployeeID), trainingID, a.MirrorDoc())
	if err != nil {
		return &PersistenceError{Op: "sync training " + trainingID, Half: "mirror", Err: err}
	}
	return nil
}

// patchChanges reports whether applying patch would change the document.
// Values are compared after number normalization because JSON round-tripping
// through the store widens every number to float64.
func patchChanges(doc, patch map[string]any) bool {
	for k, v := range patch {
		if normalize(doc[k]) != normalize(v) {
			return true
		}
	}
	return false
}

func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case nil:
		return ""
	}
	return v
}
