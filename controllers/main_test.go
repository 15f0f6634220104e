package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Damien-Lo/PersonalAssistantNative/config"
	"github.com/Damien-Lo/PersonalAssistantNative/routes"
)

// setupApp builds the full route tree over a fresh in-memory database.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	config.DB = db
	config.Migrate(db)

	app := fiber.New()
	routes.Setup(app)
	return app
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerUser registers a fresh account and returns its access token.
func registerUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email":    email,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Access)
	require.NotEmpty(t, body.Refresh)
	return body.Access
}
