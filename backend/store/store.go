package store

import "context"

// Top-level collections. Subcollections are addressed by path construction,
// e.g. employees/{id}/trainings.
const (
	Users            = "users"
	Employees        = "employees"
	Trainings        = "trainings"
	TrainingPrograms = "training_programs"
	Qualifications   = "qualifications"
)

// EmployeeSkills returns the skills subcollection path for one employee.
func EmployeeSkills(employeeID string) string {
	return Employees + "/" + employeeID + "/skills"
}

// EmployeeTrainings returns the per-employee training mirror subcollection path.
// The mobile client reads and writes this collection directly, so its documents
// follow the mobile field naming (see models/mirror.go).
func EmployeeTrainings(employeeID string) string {
	return Employees + "/" + employeeID + "/trainings"
}

// Document is one stored document together with its id.
type Document struct {
	ID   string
	Data map[string]any
}

// Store is a generic document store: collections of schemaless JSON documents
// addressed by (collection path, document id). Documents round-trip through
// JSON, so every number reads back as float64 regardless of the type it was
// written with.
type Store interface {
	// Get returns the document body, or (nil, nil) when the document does not exist.
	Get(ctx context.Context, collection, id string) (map[string]any, error)
	// Query returns all documents of a collection whose body field equals value.
	Query(ctx context.Context, collection, field string, value any) ([]Document, error)
	// List returns every document of a collection.
	List(ctx context.Context, collection string) ([]Document, error)
	// Add stores a document under a generated id and returns that id.
	Add(ctx context.Context, collection string, doc map[string]any) (string, error)
	// Set overwrites the document, creating it if absent.
	Set(ctx context.Context, collection, id string, doc map[string]any) error
	// SetMerge merges the given keys into the document, creating it if absent.
	// Keys not present in doc are left untouched.
	SetMerge(ctx context.Context, collection, id string, doc map[string]any) error
	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
}
