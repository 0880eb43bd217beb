package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/studyhub-api/internal/store"
)

// maxErrLen bounds store error messages surfaced to clients.
const maxErrLen = 80

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// available guards data endpoints against a store that never came up.
// Returns false after writing a 503 when the store handle is absent.
func available(c *gin.Context, s store.Store) bool {
	if s == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
		return false
	}
	return true
}

// storeError renders a failed store call. Not-found is the caller's business;
// everything else is a generic failure with a bounded message.
func storeError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": truncate(err.Error(), maxErrLen)})
}
