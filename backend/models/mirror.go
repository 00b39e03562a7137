package models

import "time"

// The mobile client reads and writes the per-employee training mirror with its
// own serialization: lower-camel field names and epoch-millisecond dates.
// Every translation between the canonical assignment shape and the mirror
// shape goes through this file; no call site builds mirror documents by hand.

// MirrorDoc renders the assignment in the mobile client's field naming.
func (a *TrainingAssignment) MirrorDoc() map[string]any {
	return map[string]any{
		"employeeId":          a.EmployeeID,
		"title":               a.Title,
		"provider":            a.Provider,
		"description":         a.Description,
		"startDate":           epochMillis(a.StartDate),
		"endDate":             epochMillis(a.EndDate),
		"status":              a.Status.String(),
		"certificateUrl":      a.CertificateURL,
		"createdAt":           epochMillis(a.CreatedAt),
		"certificatePdfUrl":   a.CertificatePdfURL,
		"certificateFileName": a.CertificateFileName,
		"progress":            a.Progress,
		"trainingProgramId":   a.TrainingProgramID,
		"assignedBy":          a.AssignedBy,
		"assignedReason":      a.AssignedReason,
		"assignedDate":        epochMillis(a.AssignedDate),
		"completedDate":       epochMillis(a.CompletedDate),
	}
}

// AssignmentFromMirror builds a canonical assignment from a mirror document.
// Fields the mirror shape does not carry stay at their zero values.
func AssignmentFromMirror(id string, doc map[string]any) *TrainingAssignment {
	return &TrainingAssignment{
		ID:                  id,
		EmployeeID:          docString(doc, "employeeId"),
		Title:               docString(doc, "title"),
		Provider:            docString(doc, "provider"),
		Description:         docString(doc, "description"),
		StartDate:           timeFromMillis(doc, "startDate"),
		EndDate:             timeFromMillis(doc, "endDate"),
		Status:              ParseStatus(docString(doc, "status")),
		CertificateURL:      docString(doc, "certificateUrl"),
		CreatedAt:           timeFromMillis(doc, "createdAt"),
		CertificatePdfURL:   docString(doc, "certificatePdfUrl"),
		CertificateFileName: docString(doc, "certificateFileName"),
		Progress:            docInt(doc, "progress"),
		TrainingProgramID:   docString(doc, "trainingProgramId"),
		AssignedBy:          docString(doc, "assignedBy"),
		AssignedReason:      docString(doc, "assignedReason"),
		AssignedDate:        timeFromMillis(doc, "assignedDate"),
		CompletedDate:       timeFromMillis(doc, "completedDate"),
	}
}

// mirrorToCanonicalKeys maps mirror field names to canonical field names for
// the fields the mobile client owns.
var mirrorToCanonicalKeys = map[string]string{
	"employeeId":          "EmployeeId",
	"title":               "Title",
	"provider":            "Provider",
	"description":         "Description",
	"startDate":           "StartDate",
	"endDate":             "EndDate",
	"status":              "Status",
	"certificateUrl":      "CertificateUrl",
	"createdAt":           "CreatedAt",
	"certificatePdfUrl":   "CertificatePdfUrl",
	"certificateFileName": "CertificateFileName",
	"progress":            "Progress",
	"trainingProgramId":   "TrainingProgramId",
	"assignedBy":          "AssignedBy",
	"assignedReason":      "AssignedReason",
	"assignedDate":        "AssignedDate",
	"completedDate":       "CompletedDate",
}

var mirrorDateKeys = map[string]bool{
	"startDate":     true,
	"endDate":       true,
	"createdAt":     true,
	"assignedDate":  true,
	"completedDate": true,
}

// CanonicalPatchFromMirror translates the mirror-owned fields of a mirror
// document into a canonical-key patch for a merge write. Only keys actually
// present in the mirror document are included, so fields the mobile client
// never wrote are left untouched on the canonical side.
func CanonicalPatchFromMirror(doc map[string]any) map[string]any {
	patch := map[string]any{}
	for mirrorKey, canonicalKey := range mirrorToCanonicalKeys {
		v, ok := doc[mirrorKey]
		if !ok {
			continue
		}
		if mirrorDateKeys[mirrorKey] {
			patch[canonicalKey] = timeDoc(millisToTime(v))
		} else if mirrorKey == "progress" {
			patch[canonicalKey] = docInt(doc, mirrorKey)
		} else {
			patch[canonicalKey] = v
		}
	}
	return patch
}

// epochMillis serializes a date the mobile way; the zero time becomes 0.
func epochMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func timeFromMillis(doc map[string]any, key string) time.Time {
	return millisToTime(doc[key])
}

func millisToTime(v any) time.Time {
	var ms int64
	switch n := v.(type) {
	case int64:
		ms = n
	case int:
		ms = int64(n)
	case float64:
		ms = int64(n)
	}
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
