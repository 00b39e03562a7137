package controllers

import (
	"skillaudit/backend/models"
	"skillaudit/backend/services"
	"skillaudit/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgramsController struct {
	Programs *services.ProgramService
}

func NewProgramsController(programs *services.ProgramService) *ProgramsController {
	return &ProgramsController{Programs: programs}
}

type programInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Provider        string   `json:"provider"`
	Category        string   `json:"category"`
	DurationHours   int      `json:"durationHours"`
	DifficultyLevel string   `json:"difficultyLevel"`
	Format          string   `json:"format"`
	SkillsCovered   []string `json:"skillsCovered"`
	IsActive        *bool    `json:"isActive"`
}

// CreateProgram godoc
// @Summary Create a training program
// @Tags programs
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /admin/programs [post]
func (pc *ProgramsController) CreateProgram(c *fiber.Ctx) error {
	var input programInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	id, err := pc.Programs.Create(c.Context(), models.TrainingProgram{
		Title:           input.Title,
		Description:     input.Description,
		Provider:        input.Provider,
		Category:        input.Category,
		DurationHours:   input.DurationHours,
		DifficultyLevel: input.DifficultyLevel,
		Format:          input.Format,
		SkillsCovered:   input.SkillsCovered,
		IsActive:        active,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, fiber.Map{"id": id})
}

func (pc *ProgramsController) ListPrograms(c *fiber.Ctx) error {
	programs, err := pc.Programs.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, programs)
}

func (pc *ProgramsController) GetProgram(c *fiber.Ctx) error {
	program, err := pc.Programs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if program == nil {
		return utils.NotFound(c, "Training program not found")
	}
	return utils.Success(c, fiber.StatusOK, program)
}

func (pc *ProgramsController) UpdateProgram(c *fiber.Ctx) error {
	var input programInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	patch := map[string]any{}
	if input.Title != "" {
		patch["Title"] = input.Title
	}
	if input.Description != "" {
		patch["Description"] = input.Description
	}
	if input.Provider != "" {
		patch["Provider"] = input.Provider
	}
	if input.Category != "" {
		patch["Category"] = input.Category
	}
	if input.DurationHours != 0 {
		patch["DurationHours"] = input.DurationHours
	}
	if input.DifficultyLevel != "" {
		patch["DifficultyLevel"] = input.DifficultyLevel
	}
	if input.Format != "" {
		patch["Format"] = input.Format
	}
	if input.SkillsCovered != nil {
		patch["SkillsCovered"] = input.SkillsCovered
	}
	if input.IsActive != nil {
		patch["IsActive"] = *input.IsActive
	}
	if err := pc.Programs.Update(c.Context(), c.Params("id"), patch); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"id": c.Params("id")})
}

// DeleteProgram godoc
// @Summary Delete a training program
// @Description Fails with 409 while assignments still reference the program
// @Tags programs
// @Produce json
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /admin/programs/{id} [delete]
func (pc *ProgramsController) DeleteProgram(c *fiber.Ctx) error {
	if err := pc.Programs.Delete(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}
