package controllers

import (
	"skillaudit/backend/services"
	"skillaudit/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type RecommendationsController struct {
	Recommendations *services.RecommendationService
}

func NewRecommendationsController(recommendations *services.RecommendationService) *RecommendationsController {
	return &RecommendationsController{Recommendations: recommendations}
}

// GetGaps godoc
// @Summary Get an employee's skill gaps against the organizational catalog
// @Tags recommendations
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /employees/{id}/gaps [get]
func (rc *RecommendationsController) GetGaps(c *fiber.Ctx) error {
	gaps, err := rc.Recommendations.GapsForEmployee(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if gaps == nil {
		return utils.NotFound(c, "Employee not found")
	}
	return utils.Success(c, fiber.StatusOK, gaps)
}

// GetRecommendations godoc
// @Summary Recommend training programs for an employee's significant skill gaps
// @Tags recommendations
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /employees/{id}/recommendations [get]
func (rc *RecommendationsController) GetRecommendations(c *fiber.Ctx) error {
	recs, err := rc.Recommendations.Recommend(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if recs == nil {
		return utils.NotFound(c, "Employee not found")
	}
	return utils.Success(c, fiber.StatusOK, recs)
}
