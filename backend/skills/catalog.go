package skills

import "strings"

// CatalogEntry is one required organizational skill and its target level.
type CatalogEntry struct {
	Name          string
	RequiredLevel int
}

// DefaultRequiredLevel applies to skill names outside the catalog.
const DefaultRequiredLevel = 3

// Catalog is the fixed organizational skill list. Each concept appears under
// two names because the HR vocabulary and the mobile client's vocabulary
// label the same competency differently; both rows are kept verbatim.
var Catalog = []CatalogEntry{
	{Name: "Financial Modeling", RequiredLevel: 3},
	{Name: "Budgeting & Forecasting", RequiredLevel: 3},
	{Name: "Data Analysis", RequiredLevel: 4},
	{Name: "Data Analytics", RequiredLevel: 4},
	{Name: "Risk Management", RequiredLevel: 3},
	{Name: "Compliance & Audit", RequiredLevel: 3},
	{Name: "Project Management", RequiredLevel: 3},
	{Name: "Project Planning", RequiredLevel: 3},
	{Name: "Report Writing", RequiredLevel: 3},
	{Name: "Documentation & Reporting", RequiredLevel: 3},
}

// RequiredLevel looks a skill name up in the catalog, case-insensitively.
func RequiredLevel(name string) int {
	for _, entry := range Catalog {
		if strings.EqualFold(entry.Name, name) {
			return entry.RequiredLevel
		}
	}
	return DefaultRequiredLevel
}

type categoryRule struct {
	keywords []string
	category string
}

// Rules are checked in order; the first keyword hit wins.
var categoryRules = []categoryRule{
	{[]string{"financial", "budget", "analysis"}, "Financial & Budgeting"},
	{[]string{"data", "analytics", "statistical"}, "Data & Analytics"},
	{[]string{"risk", "compliance", "audit"}, "Risk Management"},
	{[]string{"project", "planning", "management"}, "Project Management"},
	{[]string{"report", "documentation", "writing"}, "Reporting & Documentation"},
}

// CategoryFor classifies a skill name into a category by keyword.
func CategoryFor(skillName string) string {
	name := strings.ToLower(skillName)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.category
			}
		}
	}
	return "General"
}
