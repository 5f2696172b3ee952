package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/protrack-simple/database"
	"github.com/protrack-simple/middleware"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the full API against a fresh in-memory database
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Recovery())
	api := router.Group("/api")
	RegisterRoutes(api)
	return router
}

// doRequest performs a JSON request against the router. A non-empty token is
// sent as a bearer Authorization header.
func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerUser creates an account and returns its token
func registerUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"first_name":            "Jane",
		"last_name":             "Doe",
		"email":                 email,
		"password":              "secret-password",
		"password_confirmation": "secret-password",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	token, ok := body["token"].(string)
	require.True(t, ok, "register response should carry a token")
	return token
}

// createProject creates a project and returns its ID
func createProject(t *testing.T, router *gin.Engine, token, name, status string) string {
	t.Helper()
	payload := map[string]interface{}{"name": name}
	if status != "" {
		payload["status"] = status
	}
	w := doRequest(t, router, http.MethodPost, "/api/projects", payload, token)
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	return data["id"].(string)
}

// createAttribute defines an attribute and returns its ID
func createAttribute(t *testing.T, router *gin.Engine, token, name, attrType string) string {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/attributes", map[string]interface{}{
		"name": name,
		"type": attrType,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	return data["id"].(string)
}

// createAttributeValue attaches a value to a project and returns its ID
func createAttributeValue(t *testing.T, router *gin.Engine, token, attributeID, projectID, value string) string {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/attribute-values", map[string]interface{}{
		"attribute_id": attributeID,
		"entity_id":    projectID,
		"value":        value,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	return data["id"].(string)
}
