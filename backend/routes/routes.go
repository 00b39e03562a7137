package routes

import (
	"log"

	"skillaudit/backend/config"
	"skillaudit/backend/controllers"
	"skillaudit/backend/files"
	"skillaudit/backend/middleware"
	"skillaudit/backend/services"
	"skillaudit/backend/store"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, st store.Store, cfg *config.Config, logger *log.Logger) {
	// Services
	gapService := services.NewGapService(st)
	programService := services.NewProgramService(st)
	employeeService := services.NewEmployeeService(st, gapService)
	propagationService := services.NewPropagationService(st)
	assignmentService := services.NewAssignmentService(st, gapService, programService, propagationService, logger)
	syncService := services.NewSyncService(st)
	recommendationService := services.NewRecommendationService(gapService, programService)
	fileStorage := files.NewLocalStorage(cfg.CertificateDir, cfg.BaseURL)

	// Auth routes
	authController := controllers.NewAuthController(st, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(cfg)

	// Employee routes
	employeesController := controllers.NewEmployeesController(employeeService)
	employees := app.Group("/api/employees", authMiddleware)
	employees.Get("/", employeesController.ListEmployees)
	employees.Get("/:id", employeesController.GetEmployee)
	employees.Get("/:id/skills", employeesController.ListSkills)
	employees.Post("/:id/skills", employeesController.AddSkill)
	employees.Put("/:id/skills/:skillId", employeesController.UpdateSkill)
	employees.Delete("/:id/skills/:skillId", employeesController.DeleteSkill)
	employees.Get("/:id/qualifications", employeesController.ListQualifications)
	employees.Post("/:id/qualifications", employeesController.AddQualification)
	employees.Delete("/:id/qualifications/:qualificationId", employeesController.DeleteQualification)

	// Gap and recommendation routes
	recommendationsController := controllers.NewRecommendationsController(recommendationService)
	employees.Get("/:id/gaps", recommendationsController.GetGaps)
	employees.Get("/:id/recommendations", recommendationsController.GetRecommendations)

	// Training program routes
	programsController := controllers.NewProgramsController(programService)
	programs := app.Group("/api/programs", authMiddleware)
	programs.Get("/", programsController.ListPrograms)
	programs.Get("/:id", programsController.GetProgram)

	// Assignment routes
	assignmentsController := controllers.NewAssignmentsController(assignmentService, syncService, fileStorage)
	assignments := app.Group("/api/assignments", authMiddleware)
	assignments.Get("/", assignmentsController.ListAssignments)
	assignments.Get("/:id", assignmentsController.GetAssignment)
	assignments.Post("/:id/accept", assignmentsController.AcceptAssignment)
	assignments.Post("/:id/start", assignmentsController.StartAssignment)
	assignments.Post("/:id/progress", assignmentsController.UpdateProgress)
	assignments.Post("/:id/complete", assignmentsController.CompleteAssignment)

	// Admin routes
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Post("/employees", employeesController.CreateEmployee)
	admin.Put("/employees/:id", employeesController.UpdateEmployee)
	admin.Delete("/employees/:id", employeesController.DeleteEmployee)
	admin.Post("/programs", programsController.CreateProgram)
	admin.Put("/programs/:id", programsController.UpdateProgram)
	admin.Delete("/programs/:id", programsController.DeleteProgram)
	admin.Post("/assignments", assignmentsController.CreateAssignment)
	admin.Post("/assignments/bulk", assignmentsController.BulkAssign)
	admin.Post("/assignments/:id/cancel", assignmentsController.CancelAssignment)
	admin.Delete("/assignments/:id", assignmentsController.DeleteAssignment)
	admin.Post("/assignments/:id/sync-mirror", assignmentsController.SyncAssignmentMirror)
	admin.Post("/employees/:id/sync", assignmentsController.SyncEmployee)
}
