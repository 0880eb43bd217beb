package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/studyhub-api/internal/handlers"
)

func TestRootBanner(t *testing.T) {
	r, _ := setupTest()

	resp := doJSON(t, r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Timetable & Resources Backend Running", body["message"])
}

func TestDiagnosticsConnected(t *testing.T) {
	r, _ := setupTest()

	doJSON(t, r, http.MethodPost, "/api/doubts", `{"question":"ping?"}`)

	resp := doJSON(t, r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "✅ Running", body["backend"])
	assert.Equal(t, "✅ Connected & Working", body["database"])
	assert.Equal(t, "✅ Set", body["database_url"])
	assert.Equal(t, "memory", body["database_name"])
	assert.Equal(t, "Connected", body["connection_status"])
	assert.Contains(t, body["collections"], "doubt")
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.NewDiagnosticsHandler(nil, false).Register(r)

	resp := doJSON(t, r, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "✅ Running", body["backend"])
	assert.Equal(t, "⚠️ Available but not initialized", body["database"])
	assert.Equal(t, "Not Connected", body["connection_status"])
	assert.Nil(t, body["database_url"])
	assert.Nil(t, body["database_name"])
}

func TestDataEndpointsUnavailableWithoutStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	handlers.NewTimetableHandler(nil).Register(api)
	handlers.NewDoubtHandler(nil).Register(api)

	resp := doJSON(t, r, http.MethodGet, "/api/timetable", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)

	resp = doJSON(t, r, http.MethodPost, "/api/doubts", `{"question":"up?"}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}
