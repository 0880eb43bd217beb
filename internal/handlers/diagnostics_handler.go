package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/studyhub-api/internal/store"
)

// DiagnosticsHandler serves the root banner and the /test status report.
// Neither endpoint may fail: every error branch is rendered inline.
type DiagnosticsHandler struct {
	Store          store.Store
	DatabaseURLSet bool
}

func NewDiagnosticsHandler(s store.Store, databaseURLSet bool) *DiagnosticsHandler {
	return &DiagnosticsHandler{Store: s, DatabaseURLSet: databaseURLSet}
}

func (h *DiagnosticsHandler) Register(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/test", h.Test)
}

// Root godoc
// @Summary Service banner
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *DiagnosticsHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Timetable & Resources Backend Running"})
}

// Test godoc
// @Summary Backend and database status
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (h *DiagnosticsHandler) Test(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.Store == nil {
		response["database"] = "⚠️ Available but not initialized"
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "✅ Connected & Working"
	if h.DatabaseURLSet {
		response["database_url"] = "✅ Set"
	} else {
		response["database_url"] = "❌ Not Set"
	}
	response["database_name"] = h.Store.Name()
	response["connection_status"] = "Connected"

	if names, err := h.Store.Collections(c.Request.Context()); err != nil {
		response["database"] = "⚠️ Connected but error: " + truncate(err.Error(), maxErrLen)
	} else {
		response["collections"] = names
	}

	c.JSON(http.StatusOK, response)
}
