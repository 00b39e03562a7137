package services

import (
	"context"
	"strings"

	"skillaudit/backend/models"
	"skillaudit/backend/skills"
)

// SignificantGap is the threshold at which a skill gap generates training
// recommendations; smaller gaps are left to on-the-job growth.
const SignificantGap = 2

// maxProgramsPerSkill caps how many candidate programs one gap proposes.
const maxProgramsPerSkill = 2

// Recommendation pairs one significant skill gap with one candidate program.
type Recommendation struct {
	SkillName           string `json:"skillName"`
	CurrentLevel        int    `json:"currentLevel"`
	RequiredLevel       int    `json:"requiredLevel"`
	Gap                 int    `json:"gap"`
	RecommendedTraining string `json:"recommendedTrainingTitle"`
	TrainingProgramID   string `json:"trainingProgramId"`
	Priority            string `json:"priority"`
}

// PriorityFor encodes the tri-level priority. Low is unreachable through
// Recommend because of the significant-gap filter, but the encoding is part
// of the API.
func PriorityFor(gap int) string {
	switch {
	case gap >= 3:
		return "High"
	case gap >= SignificantGap:
		return "Medium"
	default:
		return "Low"
	}
}

// RecommendationService maps skill gaps to prioritized training proposals.
type RecommendationService struct {
	Gaps     *GapService
	Programs *ProgramService
}

func NewRecommendationService(gaps *GapService, programs *ProgramService) *RecommendationService {
	return &RecommendationService{Gaps: gaps, Programs: programs}
}

// Recommend proposes up to two active programs per significant gap. Programs
// are considered in id order, so the first-two cut is deterministic. Gaps with
// no matching program are omitted; an unknown employee yields a nil result.
func (s *RecommendationService) Recommend(ctx context.Context, employeeID string) ([]Recommendation, error) {
	gaps, err := s.Gaps.ComputeGaps(ctx, employeeID)
	if err != nil || gaps == nil {
		return nil, err
	}
	programs, err := s.Programs.List(ctx)
	if err != nil {
		return nil, err
	}

	recs := []Recommendation{}
	for _, gap := range gaps {
		if gap.Gap < SignificantGap {
			continue
		}
		found := 0
		for _, program := range programs {
			if !program.IsActive || !covers(program, gap.SkillName) {
				continue
			}
			recs = append(recs, Recommendation{
				SkillName:           gap.SkillName,
				CurrentLevel:        gap.CurrentLevel,
				RequiredLevel:       gap.RequiredLevel,
				Gap:                 gap.Gap,
				RecommendedTraining: program.Title,
				TrainingProgramID:   program.ID,
				Priority:            PriorityFor(gap.Gap),
			})
			found++
			if found == maxProgramsPerSkill {
				break
			}
		}
	}
	return recs, nil
}

func covers(program models.TrainingProgram, skillName string) bool {
	for _, name := range program.SkillsCovered {
		if strings.EqualFold(name, skillName) {
			return true
		}
	}
	return false
}

// GapsForEmployee is a pass-through used by the HTTP layer; kept here so the
// controller depends on one service.
func (s *RecommendationService) GapsForEmployee(ctx context.Context, employeeID string) ([]skills.SkillGap, error) {
	return s.Gaps.ComputeGaps(ctx, employeeID)
}
