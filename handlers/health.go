package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckConnection reports whether the product database is reachable.
func (h *Handler) CheckConnection(c *gin.Context) {
	if err := h.store.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
