package models

import (
	"encoding/json"
	"strings"
)

// AssignmentStatus is the closed internal form of the assignment status.
// Storage keeps the status as a free string because the mobile client writes
// the same documents, so reads go through ParseStatus and unknown strings
// become StatusUnknown rather than an error.
type AssignmentStatus int

const (
	StatusUnknown AssignmentStatus = iota
	StatusPending
	StatusAccepted
	StatusInProgress
	StatusCompleted
	StatusCancelled
)

var statusNames = map[AssignmentStatus]string{
	StatusPending:    "Pending",
	StatusAccepted:   "Accepted",
	StatusInProgress: "InProgress",
	StatusCompleted:  "Completed",
	StatusCancelled:  "Cancelled",
}

func ParseStatus(s string) AssignmentStatus {
	for status, name := range statusNames {
		if strings.EqualFold(s, name) {
			return status
		}
	}
	return StatusUnknown
}

func (s AssignmentStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// MarshalJSON keeps the wire form identical to the stored string form.
func (s AssignmentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *AssignmentStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*s = ParseStatus(name)
	return nil
}

// Terminal reports whether no further lifecycle transitions apply.
func (s AssignmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
