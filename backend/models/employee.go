package models

import "time"

type Employee struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	CreatedAt  time.Time `json:"createdAt"`

	// Denormalized, loaded on demand. Never nil after a full load: absent
	// subcollections come back as empty slices.
	Skills         []Skill              `json:"skills"`
	Qualifications []Qualification      `json:"qualifications"`
	Trainings      []TrainingAssignment `json:"trainings"`

	// Computed on every full load, never persisted.
	Metrics EmployeeMetrics `json:"metrics"`
}

// EmployeeMetrics is derived from the employee's skills against the skill
// catalog; see skills.CalculateMetrics.
type EmployeeMetrics struct {
	AverageSkillLevel float64 `json:"averageSkillLevel"`
	TotalSkillGaps    int     `json:"totalSkillGaps"`
	CriticalGaps      int     `json:"criticalGaps"`
}

func (e *Employee) Doc() map[string]any {
	return map[string]any{
		"UserId":     e.UserID,
		"Name":       e.Name,
		"Department": e.Department,
		"Position":   e.Position,
		"CreatedAt":  timeDoc(e.CreatedAt),
	}
}

func EmployeeFromDoc(id string, doc map[string]any) Employee {
	return Employee{
		ID:             id,
		UserID:         docString(doc, "UserId"),
		Name:           docString(doc, "Name"),
		Department:     docString(doc, "Department"),
		Position:       docString(doc, "Position"),
		CreatedAt:      docTime(doc, "CreatedAt"),
		Skills:         []Skill{},
		Qualifications: []Qualification{},
		Trainings:      []TrainingAssignment{},
	}
}

// Skill is one employee skill record. It lives in the employee's skills
// subcollection and references its owner by id; the employee document and the
// skill records are independently writable.
type Skill struct {
	ID              string    `json:"id"`
	EmployeeID      string    `json:"employeeId"`
	Name            string    `json:"name"`
	Level           string    `json:"level"` // free text: "1".."5" or beginner/basic/intermediate/advanced/expert
	Category        string    `json:"category"`
	YearsExperience float64   `json:"yearsExperience"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (s *Skill) Doc() map[string]any {
	return map[string]any{
		"EmployeeId":      s.EmployeeID,
		"Name":            s.Name,
		"Level":           s.Level,
		"Category":        s.Category,
		"YearsExperience": s.YearsExperience,
		"CreatedAt":       timeDoc(s.CreatedAt),
	}
}

func SkillFromDoc(id string, doc map[string]any) Skill {
	return Skill{
		ID:              id,
		EmployeeID:      docString(doc, "EmployeeId"),
		Name:            docString(doc, "Name"),
		Level:           docString(doc, "Level"),
		Category:        docString(doc, "Category"),
		YearsExperience: docFloat(doc, "YearsExperience"),
		CreatedAt:       docTime(doc, "CreatedAt"),
	}
}

type Qualification struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employeeId"`
	Name           string    `json:"name"`
	Issuer         string    `json:"issuer"`
	IssueDate      time.Time `json:"issueDate"`
	ExpiryDate     time.Time `json:"expiryDate"`
	CertificateURL string    `json:"certificateUrl"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (q *Qualification) Doc() map[string]any {
	return map[string]any{
		"EmployeeId":     q.EmployeeID,
		"Name":           q.Name,
		"Issuer":         q.Issuer,
		"IssueDate":      timeDoc(q.IssueDate),
		"ExpiryDate":     timeDoc(q.ExpiryDate),
		"CertificateUrl": q.CertificateURL,
		"CreatedAt":      timeDoc(q.CreatedAt),
	}
}

func QualificationFromDoc(id string, doc map[string]any) Qualification {
	return Qualification{
		ID:             id,
		EmployeeID:     docString(doc, "EmployeeId"),
		Name:           docString(doc, "Name"),
		Issuer:         docString(doc, "Issuer"),
		IssueDate:      docTime(doc, "IssueDate"),
		ExpiryDate:     docTime(doc, "ExpiryDate"),
		CertificateURL: docString(doc, "CertificateUrl"),
		CreatedAt:      docTime(doc, "CreatedAt"),
	}
}
