package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/protrack-simple/database"
	"github.com/protrack-simple/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timesheetFixtures(t *testing.T) (router *gin.Engine, token, userID, projectID string) {
	t.Helper()
	r := setupRouter(t)
	token = registerUser(t, r, "jane@example.com")
	projectID = createProject(t, r, token, "project a", "")

	var user models.User
	require.NoError(t, database.DB.First(&user, "email = ?", "jane@example.com").Error)
	return r, token, user.ID, projectID
}

func TestCreateTimesheet(t *testing.T) {
	router, token, userID, projectID := timesheetFixtures(t)

	t.Run("logs hours and lowercases task name", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/timesheets", map[string]interface{}{
			"task_name":  "Code Review",
			"date":       "2026-02-10",
			"hours":      2.5,
			"user_id":    userID,
			"project_id": projectID,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "code review", data["task_name"])
		assert.Equal(t, 2.5, data["hours"])
	})

	t.Run("zero hours are allowed", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/timesheets", map[string]interface{}{
			"task_name":  "standup",
			"date":       "2026-02-11",
			"hours":      0,
			"user_id":    userID,
			"project_id": projectID,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative hours fail validation", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/timesheets", map[string]interface{}{
			"task_name":  "time travel",
			"date":       "2026-02-11",
			"hours":      -1,
			"user_id":    userID,
			"project_id": projectID,
		}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		details := decodeBody(t, w)["details"].(map[string]interface{})
		assert.Contains(t, details, "hours")
	})

	t.Run("malformed date fails validation", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/timesheets", map[string]interface{}{
			"task_name":  "planning",
			"date":       "10/02/2026",
			"hours":      1,
			"user_id":    userID,
			"project_id": projectID,
		}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown user or project fail validation", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/timesheets", map[string]interface{}{
			"task_name":  "ghost work",
			"date":       "2026-02-11",
			"hours":      1,
			"user_id":    uuid.NewString(),
			"project_id": projectID,
		}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		details := decodeBody(t, w)["details"].(map[string]interface{})
		assert.Contains(t, details, "user_id")

		w = doRequest(t, router, http.MethodPost, "/api/timesheets", map[string]interface{}{
			"task_name":  "ghost work",
			"date":       "2026-02-11",
			"hours":      1,
			"user_id":    userID,
			"project_id": uuid.NewString(),
		}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestTimesheetReads(t *testing.T) {
	router, token, userID, projectID := timesheetFixtures(t)

	w := doRequest(t, router, http.MethodPost, "/api/timesheets", map[string]interface{}{
		"task_name":  "design",
		"date":       "2026-02-12",
		"hours":      6,
		"user_id":    userID,
		"project_id": projectID,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	timesheetID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(string)

	t.Run("list joins project and reduced user projection", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/timesheets", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeBody(t, w)["data"].([]interface{})
		require.Len(t, data, 1)
		entry := data[0].(map[string]interface{})

		user := entry["user"].(map[string]interface{})
		assert.Equal(t, userID, user["id"])
		assert.Equal(t, "jane", user["first_name"])
		assert.Equal(t, "jane@example.com", user["email"])
		assert.NotContains(t, user, "last_name")
		assert.NotContains(t, user, "password")

		project := entry["project"].(map[string]interface{})
		assert.Equal(t, projectID, project["id"])
	})

	t.Run("get returns the same shape", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/timesheets/"+timesheetID, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "design", data["task_name"])
		assert.NotNil(t, data["user"])
		assert.NotNil(t, data["project"])
	})

	t.Run("get nonexistent returns 404", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/timesheets/"+uuid.NewString(), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Timesheet not found", decodeBody(t, w)["error"])
	})
}

func TestUpdateAndDeleteTimesheet(t *testing.T) {
	router, token, userID, projectID := timesheetFixtures(t)

	w := doRequest(t, router, http.MethodPost, "/api/timesheets", map[string]interface{}{
		"task_name":  "implementation",
		"date":       "2026-02-13",
		"hours":      8,
		"user_id":    userID,
		"project_id": projectID,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	timesheetID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(string)

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPatch, "/api/timesheets/"+timesheetID, map[string]interface{}{
			"hours": 7.5,
		}, token)
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		assert.Equal(t, 7.5, data["hours"])
		assert.Equal(t, "implementation", data["task_name"])
		assert.Equal(t, "2026-02-13", data["date"])
	})

	t.Run("repointing to an unknown project fails", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPatch, "/api/timesheets/"+timesheetID, map[string]interface{}{
			"project_id": uuid.NewString(),
		}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := doRequest(t, router, http.MethodDelete, "/api/timesheets/"+timesheetID, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, router, http.MethodDelete, "/api/timesheets/"+timesheetID, nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
