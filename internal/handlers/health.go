// internal/handlers/health.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hautevault/boutique-backend/internal/store"
)

type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(st store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

func (h *HealthHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"persistent": h.store.Persistent(),
		"now":        time.Now().UTC().Format(time.RFC3339),
	})
}
