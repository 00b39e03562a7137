package skills

import (
	"strings"

	"skillaudit/backend/models"
)

// SkillGap is one catalog row joined against an employee's skills.
type SkillGap struct {
	SkillName     string `json:"skillName"`
	CurrentLevel  int    `json:"currentLevel"`
	RequiredLevel int    `json:"requiredLevel"`
	Gap           int    `json:"gap"`
	HasSkill      bool   `json:"hasSkill"`
}

// ComputeGaps joins the employee's skills against the catalog. One entry per
// catalog row, in catalog order; callers needing prioritization sort
// themselves. A skill record with an unparseable level still counts as
// HasSkill with current level 0.
func ComputeGaps(skillList []models.Skill) []SkillGap {
	byName := skillsByName(skillList)
	gaps := make([]SkillGap, 0, len(Catalog))
	for _, entry := range Catalog {
		current := 0
		sk, has := byName[strings.ToLower(entry.Name)]
		if has {
			current = LevelFromString(sk.Level)
		}
		gaps = append(gaps, SkillGap{
			SkillName:     entry.Name,
			CurrentLevel:  current,
			RequiredLevel: entry.RequiredLevel,
			Gap:           positiveGap(entry.RequiredLevel, current),
			HasSkill:      has,
		})
	}
	return gaps
}

// GapScore is the mean gap restricted to the given skill names. Names outside
// the catalog count against the default required level. No names means no
// measurable gap, score 0.
func GapScore(skillList []models.Skill, names []string) float64 {
	if len(names) == 0 {
		return 0
	}
	byName := skillsByName(skillList)
	total := 0
	for _, name := range names {
		current := 0
		if sk, ok := byName[strings.ToLower(name)]; ok {
			current = LevelFromString(sk.Level)
		}
		total += positiveGap(RequiredLevel(name), current)
	}
	return float64(total) / float64(len(names))
}

// CalculateMetrics derives the employee's never-persisted skill metrics:
// mean canonical level across their skill records plus gap counts against
// the catalog. Critical means a significant gap (>= 2).
func CalculateMetrics(skillList []models.Skill) models.EmployeeMetrics {
	var m models.EmployeeMetrics
	if len(skillList) > 0 {
		total := 0
		for _, sk := range skillList {
			total += LevelFromString(sk.Level)
		}
		m.AverageSkillLevel = float64(total) / float64(len(skillList))
	}
	for _, gap := range ComputeGaps(skillList) {
		if gap.Gap > 0 {
			m.TotalSkillGaps++
		}
		if gap.Gap >= 2 {
			m.CriticalGaps++
		}
	}
	return m
}

func skillsByName(skillList []models.Skill) map[string]models.Skill {
	byName := make(map[string]models.Skill, len(skillList))
	for _, sk := range skillList {
		key := strings.ToLower(sk.Name)
		if _, seen := byName[key]; !seen {
			byName[key] = sk
		}
	}
	return byName
}

func positiveGap(required, current int) int {
	if gap := required - current; gap > 0 {
		return gap
	}
	return 0
}
