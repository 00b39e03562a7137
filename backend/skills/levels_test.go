package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]int{
		"1":            1,
		"2":            2,
		"3":            3,
		"4":            4,
		"5":            5,
		"9":            5, // digits clamp at 5
		"beginner":     1,
		"Beginner":     1,
		"BASIC":        2,
		"basic":        2,
		"Intermediate": 3,
		"advanced":     4,
		"Expert":       5,
		"EXPERT":       5,
		" expert ":     5,
		"":             0,
		"unknown":      0,
		"guru":         0,
		"0":            0,
		"-1":           0,
	}
	for input, want := range cases {
		assert.Equal(t, want, LevelFromString(input), "level %q", input)
	}
}

func TestNextLevel(t *testing.T) {
	cases := map[string]string{
		"Beginner":     "Intermediate",
		"beginner":     "Intermediate",
		"Basic":        "Intermediate",
		"Intermediate": "Advanced",
		"Advanced":     "Expert",
		"Expert":       "Expert", // ceiling
		"5":            "Expert",
		"3":            "Advanced",
		"":             "Intermediate",
		"garbage":      "Intermediate",
	}
	for input, want := range cases {
		assert.Equal(t, want, NextLevel(input), "bump from %q", input)
	}
}

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, "Financial & Budgeting", CategoryFor("Financial Modeling"))
	assert.Equal(t, "Financial & Budgeting", CategoryFor("Budgeting & Forecasting"))
	assert.Equal(t, "Data & Analytics", CategoryFor("Statistical Methods"))
	assert.Equal(t, "Risk Management", CategoryFor("Compliance & Audit"))
	assert.Equal(t, "Project Management", CategoryFor("Project Planning"))
	assert.Equal(t, "Reporting & Documentation", CategoryFor("Technical Writing"))
	assert.Equal(t, "General", CategoryFor("Public Speaking"))
}

func TestRequiredLevelDefaultsOutsideCatalog(t *testing.T) {
	assert.Equal(t, 3, RequiredLevel("Financial Modeling"))
	assert.Equal(t, 3, RequiredLevel("financial modeling"))
	assert.Equal(t, DefaultRequiredLevel, RequiredLevel("Underwater Basket Weaving"))
}
