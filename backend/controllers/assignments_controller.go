package controllers

import (
	"fmt"
	"path/filepath"

	"skillaudit/backend/files"
	"skillaudit/backend/services"
	"skillaudit/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AssignmentsController struct {
	Assignments *services.AssignmentService
	Sync        *services.SyncService
	Files       files.Storage
}

func NewAssignmentsController(assignments *services.AssignmentService, syncSvc *services.SyncService, fileStorage files.Storage) *AssignmentsController {
	return &AssignmentsController{Assignments: assignments, Sync: syncSvc, Files: fileStorage}
}

type createAssignmentInput struct {
	TrainingProgramID string `json:"trainingProgramId"`
	EmployeeID        string `json:"employeeId"`
	AssignedReason    string `json:"assignedReason"`
	DueDate           string `json:"dueDate"`
}

// CreateAssignment godoc
// @Summary Assign a training program to an employee
// @Tags assignments
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /assignments [post]
func (tc *AssignmentsController) CreateAssignment(c *fiber.Ctx) error {
	var input createAssignmentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	assignedBy, _ := c.Locals("user_id").(string)
	id, err := tc.Assignments.Create(c.Context(), services.CreateAssignmentInput{
		TrainingProgramID: input.TrainingProgramID,
		EmployeeID:        input.EmployeeID,
		AssignedBy:        assignedBy,
		AssignedReason:    input.AssignedReason,
		DueDate:           parseDate(input.DueDate),
	})
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, fiber.Map{"id": id})
}

func (tc *AssignmentsController) GetAssignment(c *fiber.Ctx) error {
	a, err := tc.Assignments.Get(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if a == nil {
		return utils.NotFound(c, "Assignment not found")
	}
	return utils.Success(c, fiber.StatusOK, a)
}

func (tc *AssignmentsController) ListAssignments(c *fiber.Ctx) error {
	if employeeID := c.Query("employeeId"); employeeID != "" {
		list, err := tc.Assignments.ListByEmployee(c.Context(), employeeID)
		if err != nil {
			return serviceError(c, err)
		}
		return utils.Success(c, fiber.StatusOK, list)
	}
	list, err := tc.Assignments.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, list)
}

func (tc *AssignmentsController) AcceptAssignment(c *fiber.Ctx) error {
	a, err := tc.Assignments.Accept(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, a)
}

func (tc *AssignmentsController) StartAssignment(c *fiber.Ctx) error {
	a, err := tc.Assignments.Start(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, a)
}

type progressInput struct {
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}

// UpdateProgress godoc
// @Summary Update assignment progress
// @Description Reaching 100 auto-completes the assignment unless it was cancelled
// @Tags assignments
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /assignments/{id}/progress [post]
func (tc *AssignmentsController) UpdateProgress(c *fiber.Ctx) error {
	var input progressInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	actor, _ := c.Locals("user_id").(string)
	a, err := tc.Assignments.UpdateProgress(c.Context(), c.Params("id"), input.Progress, input.Status, actor)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, a)
}

// CompleteAssignment godoc
// @Summary Complete an assignment
// @Description Accepts an optional multipart certificate upload and raises the
// @Description employee's skill levels for every skill the program covers
// @Tags assignments
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /assignments/{id}/complete [post]
func (tc *AssignmentsController) CompleteAssignment(c *fiber.Ctx) error {
	id := c.Params("id")
	certificateFileName := ""
	certificateURL := ""

	if file, err := c.FormFile("certificate"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return utils.BadRequest(c, "Cannot read certificate upload")
		}
		defer src.Close()
		certificateFileName = filepath.Base(file.Filename)
		path := fmt.Sprintf("certificates/%s/%s", id, certificateFileName)
		certificateURL, err = tc.Files.Save(c.Context(), path, src)
		if err != nil {
			return utils.InternalServerError(c, "Could not store certificate")
		}
	}

	a, err := tc.Assignments.Complete(c.Context(), id, certificateFileName, certificateURL)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, a)
}

type cancelInput struct {
	CancelledBy string `json:"cancelledBy"`
}

func (tc *AssignmentsController) CancelAssignment(c *fiber.Ctx) error {
	var input cancelInput
	if err := c.BodyParser(&input); err != nil {
		input = cancelInput{}
	}
	if input.CancelledBy == "" {
		input.CancelledBy, _ = c.Locals("user_id").(string)
	}
	a, err := tc.Assignments.Cancel(c.Context(), c.Params("id"), input.CancelledBy)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, a)
}

func (tc *AssignmentsController) DeleteAssignment(c *fiber.Ctx) error {
	if err := tc.Assignments.Delete(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}

type bulkAssignInput struct {
	TrainingProgramID string   `json:"trainingProgramId"`
	EmployeeIDs       []string `json:"employeeIds"`
	AssignedReason    string   `json:"assignedReason"`
}

// BulkAssign godoc
// @Summary Assign one program to many employees
// @Description Best effort: each employee gets an individual result and one
// @Description failure never rolls back the others
// @Tags assignments
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /assignments/bulk [post]
func (tc *AssignmentsController) BulkAssign(c *fiber.Ctx) error {
	var input bulkAssignInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if len(input.EmployeeIDs) == 0 {
		return utils.BadRequest(c, "employeeIds is required")
	}
	assignedBy, _ := c.Locals("user_id").(string)
	results := tc.Assignments.AssignToMany(c.Context(), input.TrainingProgramID, input.EmployeeIDs, assignedBy, input.AssignedReason)

	out := make([]fiber.Map, 0, len(results))
	failed := 0
	for _, r := range results {
		entry := fiber.Map{"employeeId": r.EmployeeID}
		if r.Err != nil {
			failed++
			entry["error"] = r.Err.Error()
		} else {
			entry["assignmentId"] = r.AssignmentID
		}
		out = append(out, entry)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"results":   out,
		"assigned":  len(results) - failed,
		"failed":    failed,
		"requested": len(results),
	})
}

// SyncEmployee godoc
// @Summary Reconcile an employee's training mirror into the canonical collection
// @Tags assignments
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /employees/{id}/sync [post]
func (tc *AssignmentsController) SyncEmployee(c *fiber.Ctx) error {
	report, err := tc.Sync.SyncEmployeeMirrorToCanonical(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, report)
}

func (tc *AssignmentsController) SyncAssignmentMirror(c *fiber.Ctx) error {
	if err := tc.Sync.SyncOneTrainingToMirror(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"id": c.Params("id")})
}
