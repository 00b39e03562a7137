package models

import "time"

const (
	DefaultDurationHours  = 40
	MinDurationHours      = 1
	MaxDurationHours      = 500
	DefaultDifficulty     = "Intermediate"
	DefaultTrainingFormat = "Online"
)

type TrainingProgram struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Provider        string    `json:"provider"`
	Category        string    `json:"category"`
	DurationHours   int       `json:"durationHours"`
	DifficultyLevel string    `json:"difficultyLevel"`
	Format          string    `json:"format"`
	SkillsCovered   []string  `json:"skillsCovered"` // skill names, matched case-insensitively
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ApplyDefaults fills the documented program defaults for zero-valued fields.
func (p *TrainingProgram) ApplyDefaults() {
	if p.DurationHours == 0 {
		p.DurationHours = DefaultDurationHours
	}
	if p.DifficultyLevel == "" {
		p.DifficultyLevel = DefaultDifficulty
	}
	if p.Format == "" {
		p.Format = DefaultTrainingFormat
	}
	if p.SkillsCovered == nil {
		p.SkillsCovered = []string{}
	}
}

func (p *TrainingProgram) Doc() map[string]any {
	return map[string]any{
		"Title":           p.Title,
		"Description":     p.Description,
		"Provider":        p.Provider,
		"Category":        p.Category,
		"DurationHours":   p.DurationHours,
		"DifficultyLevel": p.DifficultyLevel,
		"Format":          p.Format,
		"SkillsCovered":   p.SkillsCovered,
		"IsActive":        p.IsActive,
		"CreatedAt":       timeDoc(p.CreatedAt),
	}
}

func ProgramFromDoc(id string, doc map[string]any) TrainingProgram {
	return TrainingProgram{
		ID:              id,
		Title:           docString(doc, "Title"),
		Description:     docString(doc, "Description"),
		Provider:        docString(doc, "Provider"),
		Category:        docString(doc, "Category"),
		DurationHours:   docInt(doc, "DurationHours"),
		DifficultyLevel: docString(doc, "DifficultyLevel"),
		Format:          docString(doc, "Format"),
		SkillsCovered:   docStrings(doc, "SkillsCovered"),
		IsActive:        docBool(doc, "IsActive"),
		CreatedAt:       docTime(doc, "CreatedAt"),
	}
}

// TrainingAssignment is the canonical server-side record of one training event
// for one employee. The canonical document lives in the global trainings
// collection; a mobile-shaped copy is mirrored into the owning employee's
// trainings subcollection (see mirror.go). Every mutating operation must keep
// both copies in step.
type TrainingAssignment struct {
	ID                string `json:"id"`
	TrainingProgramID string `json:"trainingProgramId"`
	EmployeeID        string `json:"employeeId"`

	// Program fields denormalized at assignment time for the mirror shape.
	Title       string `json:"title"`
	Provider    string `json:"provider"`
	Description string `json:"description"`

	Status   AssignmentStatus `json:"status"`
	Progress int              `json:"progress"` // 0-100

	AssignedBy     string    `json:"assignedBy"`
	AssignedReason string    `json:"assignedReason"`
	AssignedDate   time.Time `json:"assignedDate"`
	DueDate        time.Time `json:"dueDate"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	AcceptedDate   time.Time `json:"acceptedDate"`
	CompletedDate  time.Time `json:"completedDate"`
	CancelledDate  time.Time `json:"cancelledDate"`
	CancelledBy    string    `json:"cancelledBy"`

	CertificateFileName string `json:"certificateFileName"`
	CertificateURL      string `json:"certificateUrl"`
	CertificatePdfURL   string `json:"certificatePdfUrl"`

	// Mean skill gap over the program's covered skills, captured at
	// assignment time and at completion time.
	SkillGapBefore float64 `json:"skillGapBefore"`
	SkillGapAfter  float64 `json:"skillGapAfter"`

	CreatedAt time.Time `json:"createdAt"`
}

func (a *TrainingAssignment) Doc() map[string]any {
	return map[string]any{
		"TrainingProgramId":   a.TrainingProgramID,
		"EmployeeId":          a.EmployeeID,
		"Title":               a.Title,
		"Provider":            a.Provider,
		"Description":         a.Description,
		"Status":              a.Status.String(),
		"Progress":            a.Progress,
		"AssignedBy":          a.AssignedBy,
		"AssignedReason":      a.AssignedReason,
		"AssignedDate":        timeDoc(a.AssignedDate),
		"DueDate":             timeDoc(a.DueDate),
		"StartDate":           timeDoc(a.StartDate),
		"EndDate":             timeDoc(a.EndDate),
		"AcceptedDate":        timeDoc(a.AcceptedDate),
		"CompletedDate":       timeDoc(a.CompletedDate),
		"CancelledDate":       timeDoc(a.CancelledDate),
		"CancelledBy":         a.CancelledBy,
		"CertificateFileName": a.CertificateFileName,
		"CertificateUrl":      a.CertificateURL,
		"CertificatePdfUrl":   a.CertificatePdfURL,
		"SkillGapBefore":      a.SkillGapBefore,
		"SkillGapAfter":       a.SkillGapAfter,
		"CreatedAt":           timeDoc(a.CreatedAt),
	}
}

func AssignmentFromDoc(id string, doc map[string]any) *TrainingAssignment {
	return &TrainingAssignment{
		ID:                  id,
		TrainingProgramID:   docString(doc, "TrainingProgramId"),
		EmployeeID:          docString(doc, "EmployeeId"),
		Title:               docString(doc, "Title"),
		Provider:            docString(doc, "Provider"),
		Description:         docString(doc, "Description"),
		Status:              ParseStatus(docString(doc, "Status")),
		Progress:            docInt(doc, "Progress"),
		AssignedBy:          docString(doc, "AssignedBy"),
		AssignedReason:      docString(doc, "AssignedReason"),
		AssignedDate:        docTime(doc, "AssignedDate"),
		DueDate:             docTime(doc, "DueDate"),
		StartDate:           docTime(doc, "StartDate"),
		EndDate:             docTime(doc, "EndDate"),
		AcceptedDate:        docTime(doc, "AcceptedDate"),
		CompletedDate:       docTime(doc, "CompletedDate"),
		CancelledDate:       docTime(doc, "CancelledDate"),
		CancelledBy:         docString(doc, "CancelledBy"),
		CertificateFileName: docString(doc, "CertificateFileName"),
		CertificateURL:      docString(doc, "CertificateUrl"),
		CertificatePdfURL:   docString(doc, "CertificatePdfUrl"),
		SkillGapBefore:      docFloat(doc, "SkillGapBefore"),
		SkillGapAfter:       docFloat(doc, "SkillGapAfter"),
		CreatedAt:           docTime(doc, "CreatedAt"),
	}
}
