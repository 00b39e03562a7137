package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want AssignmentStatus
	}{
		{"Pending", StatusPending},
		{"pending", StatusPending},
		{"ACCEPTED", StatusAccepted},
		{"InProgress", StatusInProgress},
		{"inprogress", StatusInProgress},
		{"Completed", StatusCompleted},
		{"Cancelled", StatusCancelled},
		{"", StatusUnknown},
		{"done", StatusUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseStatus(tc.in), "input %q", tc.in)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	for _, s := range []AssignmentStatus{StatusPending, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.Equal(t, s, ParseStatus(s.String()))
	}
	assert.Equal(t, "Unknown", StatusUnknown.String())
}

func TestStatusJSON(t *testing.T) {
	b, err := json.Marshal(StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, `"InProgress"`, string(b))

	var s AssignmentStatus
	require.NoError(t, json.Unmarshal([]byte(`"cancelled"`), &s))
	assert.Equal(t, StatusCancelled, s)

	require.NoError(t, json.Unmarshal([]byte(`"whatever"`), &s))
	assert.Equal(t, StatusUnknown, s)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusInProgress.Terminal())
}

func TestMirrorRoundTrip(t *testing.T) {
	a := &TrainingAssignment{
		ID:                "T1",
		TrainingProgramID: "P1",
		EmployeeID:        "E1",
		Title:             "Bootcamp",
		Status:            StatusAccepted,
		Progress:          25,
	}
	got := AssignmentFromMirror("T1", a.MirrorDoc())
	assert.Equal(t, a.EmployeeID, got.EmployeeID)
	assert.Equal(t, a.TrainingProgramID, got.TrainingProgramID)
	assert.Equal(t, a.Status, got.Status)
	assert.Equal(t, a.Progress, got.Progress)
	assert.True(t, got.CompletedDate.IsZero(), "zero dates stay zero through epoch-millis form")
}

func TestCanonicalPatchFromMirrorOnlyPresentKeys(t *testing.T) {
	patch := CanonicalPatchFromMirror(map[string]any{
		"status":   "Completed",
		"progress": float64(100),
	})
	assert.Equal(t, map[string]any{"Status": "Completed", "Progress": 100}, patch)
}
