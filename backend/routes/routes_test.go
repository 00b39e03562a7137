package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skillaudit/backend/config"
	"skillaudit/backend/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	st, err := store.NewGormStore(db)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		CertificateDir: t.TempDir(),
		BaseURL:        "/files",
	}

	app := fiber.New()
	SetupRoutes(app, st, cfg, nil)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

func register(t *testing.T, app *fiber.App, username, role string) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": username,
		"password": "pass1234",
		"role":     role,
	})
	require.Equal(t, http.StatusOK, status, "body: %v", body)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	require.True(t, ok, "body: %v", body)
	return d
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	register(t, app, "alice", "admin")

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "alice", "password": "other",
	})
	assert.Equal(t, http.StatusConflict, status, "duplicate usernames are rejected")

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "alice", "password": "pass1234",
	})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["token"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/employees/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status, "employee routes require a token")
}

func TestAdminRoutesRequireElevatedRole(t *testing.T) {
	app := newTestApp(t)
	employeeToken := register(t, app, "bob", "")

	status, _ := doJSON(t, app, http.MethodPost, "/api/admin/programs", employeeToken, fiber.Map{
		"title": "Bootcamp",
	})
	assert.Equal(t, http.StatusForbidden, status)

	hrToken := register(t, app, "carol", "hr")
	status, _ = doJSON(t, app, http.MethodPost, "/api/admin/programs", hrToken, fiber.Map{
		"title": "Bootcamp",
	})
	assert.Equal(t, http.StatusCreated, status, "hr counts as elevated")
}

func TestAssignmentLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "admin", "admin")

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/employees", token, fiber.Map{
		"name": "Alice", "department": "Finance",
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	employeeID := data(t, body)["id"].(string)

	status, body = doJSON(t, app, http.MethodPost, "/api/admin/programs", token, fiber.Map{
		"title":         "Finance Track",
		"skillsCovered": []string{"Financial Modeling"},
	})
	require.Equal(t, http.StatusCreated, status)
	programID := data(t, body)["id"].(string)

	status, body = doJSON(t, app, http.MethodPost, "/api/admin/assignments", token, fiber.Map{
		"trainingProgramId": programID,
		"employeeId":        employeeID,
		"assignedReason":    "annual review",
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	assignmentID := data(t, body)["id"].(string)

	status, body = doJSON(t, app, http.MethodGet, "/api/assignments/"+assignmentID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Pending", data(t, body)["status"])

	status, body = doJSON(t, app, http.MethodPost, "/api/assignments/"+assignmentID+"/accept", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Accepted", data(t, body)["status"])

	status, body = doJSON(t, app, http.MethodPost, "/api/assignments/"+assignmentID+"/progress", token, fiber.Map{
		"progress": 100,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Completed", data(t, body)["status"])

	// Completion propagated the covered skill onto the employee.
	status, body = doJSON(t, app, http.MethodGet, "/api/employees/"+employeeID+"/skills", token, nil)
	require.Equal(t, http.StatusOK, status)
	skills, ok := body["data"].([]any)
	require.True(t, ok, "body: %v", body)
	require.Len(t, skills, 1)
	skill := skills[0].(map[string]any)
	assert.Equal(t, "Financial Modeling", skill["name"])
	assert.Equal(t, "Intermediate", skill["level"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/admin/assignments/"+assignmentID+"/cancel", token, nil)
	assert.Equal(t, http.StatusBadRequest, status, "completed assignments cannot be cancelled")

	status, _ = doJSON(t, app, http.MethodGet, "/api/assignments/ghost", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGapsAndRecommendationsOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "admin", "admin")

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/employees", token, fiber.Map{
		"name": "Alice",
	})
	require.Equal(t, http.StatusCreated, status)
	employeeID := data(t, body)["id"].(string)

	_, body = doJSON(t, app, http.MethodPost, "/api/admin/programs", token, fiber.Map{
		"title":         "Finance Track",
		"skillsCovered": []string{"Financial Modeling"},
	})
	require.NotNil(t, body["data"])

	status, body = doJSON(t, app, http.MethodGet, "/api/employees/"+employeeID+"/gaps", token, nil)
	require.Equal(t, http.StatusOK, status)
	gaps, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, gaps, 10, "one entry per catalog skill")

	status, body = doJSON(t, app, http.MethodGet, "/api/employees/"+employeeID+"/recommendations", token, nil)
	require.Equal(t, http.StatusOK, status)
	recs, ok := body["data"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, recs)
	first := recs[0].(map[string]any)
	assert.Equal(t, "Financial Modeling", first["skillName"])
	assert.Equal(t, "High", first["priority"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/employees/ghost/gaps", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProgramDeleteGuardOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "admin", "admin")

	_, body := doJSON(t, app, http.MethodPost, "/api/admin/employees", token, fiber.Map{"name": "Alice"})
	employeeID := data(t, body)["id"].(string)
	_, body = doJSON(t, app, http.MethodPost, "/api/admin/programs", token, fiber.Map{"title": "Bootcamp"})
	programID := data(t, body)["id"].(string)
	status, body := doJSON(t, app, http.MethodPost, "/api/admin/assignments", token, fiber.Map{
		"trainingProgramId": programID,
		"employeeId":        employeeID,
	})
	require.Equal(t, http.StatusCreated, status)
	assignmentID := data(t, body)["id"].(string)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/admin/programs/"+programID, token, nil)
	assert.Equal(t, http.StatusConflict, status, "programs with assignments cannot be deleted")

	status, _ = doJSON(t, app, http.MethodDelete, "/api/admin/assignments/"+assignmentID, token, nil)
	require.Equal(t, http.StatusNoContent, status)
	status, _ = doJSON(t, app, http.MethodDelete, "/api/admin/programs/"+programID, token, nil)
	assert.Equal(t, http.StatusNoContent, status)
}
