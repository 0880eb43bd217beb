package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/studyhub-api/internal/handlers"
	"github.com/studyhub/studyhub-api/internal/store"
)

func setupTest() (*gin.Engine, *store.MemoryStore) {
	gin.SetMode(gin.TestMode)
	st := store.NewMemoryStore()
	r := gin.New()

	handlers.NewDiagnosticsHandler(st, true).Register(r)

	api := r.Group("/api")
	handlers.NewTimetableHandler(st).Register(api)
	handlers.NewResourceHandler(st).Register(api)
	handlers.NewDoubtHandler(st).Register(api)

	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}
