package controllers

import (
	"skillaudit/backend/models"
	"skillaudit/backend/services"
	"skillaudit/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type EmployeesController struct {
	Employees *services.EmployeeService
}

func NewEmployeesController(employees *services.EmployeeService) *EmployeesController {
	return &EmployeesController{Employees: employees}
}

type employeeInput struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// CreateEmployee godoc
// @Summary Create an employee record
// @Tags employees
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /admin/employees [post]
func (ec *EmployeesController) CreateEmployee(c *fiber.Ctx) error {
	var input employeeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	id, err := ec.Employees.Create(c.Context(), models.Employee{
		UserID:     input.UserID,
		Name:       input.Name,
		Department: input.Department,
		Position:   input.Position,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, fiber.Map{"id": id})
}

// ListEmployees godoc
// @Summary List all employees
// @Tags employees
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /employees [get]
func (ec *EmployeesController) ListEmployees(c *fiber.Ctx) error {
	employees, err := ec.Employees.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, employees)
}

// GetEmployee godoc
// @Summary Get one employee with skills, qualifications, trainings and metrics
// @Tags employees
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /employees/{id} [get]
func (ec *EmployeesController) GetEmployee(c *fiber.Ctx) error {
	emp, err := ec.Employees.Load(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if emp == nil {
		return utils.NotFound(c, "Employee not found")
	}
	return utils.Success(c, fiber.StatusOK, emp)
}

func (ec *EmployeesController) UpdateEmployee(c *fiber.Ctx) error {
	var input employeeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	patch := map[string]any{}
	if input.Name != "" {
		patch["Name"] = input.Name
	}
	if input.Department != "" {
		patch["Department"] = input.Department
	}
	if input.Position != "" {
		patch["Position"] = input.Position
	}
	if input.UserID != "" {
		patch["UserId"] = input.UserID
	}
	if err := ec.Employees.Update(c.Context(), c.Params("id"), patch); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"id": c.Params("id")})
}

func (ec *EmployeesController) DeleteEmployee(c *fiber.Ctx) error {
	if err := ec.Employees.Delete(c.Context(), c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}

type skillInput struct {
	Name            string  `json:"name"`
	Level           string  `json:"level"`
	Category        string  `json:"category"`
	YearsExperience float64 `json:"yearsExperience"`
}

// AddSkill godoc
// @Summary Add a skill record to an employee
// @Tags skills
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /employees/{id}/skills [post]
func (ec *EmployeesController) AddSkill(c *fiber.Ctx) error {
	var input skillInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	id, err := ec.Employees.AddSkill(c.Context(), models.Skill{
		EmployeeID:      c.Params("id"),
		Name:            input.Name,
		Level:           input.Level,
		Category:        input.Category,
		YearsExperience: input.YearsExperience,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, fiber.Map{"id": id})
}

func (ec *EmployeesController) ListSkills(c *fiber.Ctx) error {
	skills, err := ec.Employees.Gaps.EmployeeSkills(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, skills)
}

func (ec *EmployeesController) UpdateSkill(c *fiber.Ctx) error {
	var input skillInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	patch := map[string]any{}
	if input.Name != "" {
		patch["Name"] = input.Name
	}
	if input.Level != "" {
		patch["Level"] = input.Level
	}
	if input.Category != "" {
		patch["Category"] = input.Category
	}
	if input.YearsExperience != 0 {
		patch["YearsExperience"] = input.YearsExperience
	}
	if err := ec.Employees.UpdateSkill(c.Context(), c.Params("id"), c.Params("skillId"), patch); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"id": c.Params("skillId")})
}

func (ec *EmployeesController) DeleteSkill(c *fiber.Ctx) error {
	if err := ec.Employees.DeleteSkill(c.Context(), c.Params("id"), c.Params("skillId")); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}

type qualificationInput struct {
	Name           string `json:"name"`
	Issuer         string `json:"issuer"`
	IssueDate      string `json:"issueDate"`
	ExpiryDate     string `json:"expiryDate"`
	CertificateURL string `json:"certificateUrl"`
}

func (ec *EmployeesController) AddQualification(c *fiber.Ctx) error {
	var input qualificationInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	q := models.Qualification{
		EmployeeID:     c.Params("id"),
		Name:           input.Name,
		Issuer:         input.Issuer,
		IssueDate:      parseDate(input.IssueDate),
		ExpiryDate:     parseDate(input.ExpiryDate),
		CertificateURL: input.CertificateURL,
	}
	id, err := ec.Employees.AddQualification(c.Context(), q)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Created(c, fiber.Map{"id": id})
}

func (ec *EmployeesController) ListQualifications(c *fiber.Ctx) error {
	quals, err := ec.Employees.Qualifications(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, quals)
}

func (ec *EmployeesController) DeleteQualification(c *fiber.Ctx) error {
	if err := ec.Employees.DeleteQualification(c.Context(), c.Params("qualificationId")); err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}
