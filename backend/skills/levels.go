package skills

import (
	"strconv"
	"strings"
)

// Skill levels are stored as free text because the mobile client writes the
// same records. Two vocabularies are in use: digits "1".."5" and the word
// scale below. LevelFromString unions both; anything else degrades to 0.

var levelWords = map[string]int{
	"beginner":     1,
	"basic":        2,
	"intermediate": 3,
	"advanced":     4,
	"expert":       5,
}

var levelNames = map[int]string{
	1: "Beginner",
	2: "Basic",
	3: "Intermediate",
	4: "Advanced",
	5: "Expert",
}

// LevelFromString canonicalizes a stored level to 0-5. Digits map directly
// and are clamped to 5; word levels map through the fixed table; anything
// unparseable yields 0.
func LevelFromString(level string) int {
	s := strings.ToLower(strings.TrimSpace(level))
	if n, ok := levelWords[s]; ok {
		return n
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 {
		if n > 5 {
			return 5
		}
		return n
	}
	return 0
}

// LevelName is the word form of a canonical level, "" outside 1-5.
func LevelName(level int) string {
	return levelNames[level]
}

// NextLevel bumps a stored level one step along the promotion ladder
// Beginner -> Intermediate -> Advanced -> Expert. Expert is the ceiling.
// Unparseable or low levels land on Intermediate, matching the level a newly
// created post-training skill gets.
func NextLevel(current string) string {
	switch LevelFromString(current) {
	case 0, 1, 2:
		return "Intermediate"
	case 3:
		return "Advanced"
	default:
		return "Expert"
	}
}
