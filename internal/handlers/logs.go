// internal/handlers/logs.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hautevault/boutique-backend/internal/models"
	"github.com/hautevault/boutique-backend/internal/store"
	"github.com/hautevault/boutique-backend/internal/utils"
)

const (
	logsDefaultLimit = 50
	logsMaxLimit     = 200
)

type LogsHandler struct {
	store store.Store
}

func NewLogsHandler(st store.Store) *LogsHandler {
	return &LogsHandler{store: st}
}

// List returns the most recent job log lines, newest first.
func (h *LogsHandler) List(c *gin.Context) {
	limit := logsDefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > logsMaxLimit {
		limit = logsMaxLimit
	}

	logs, err := h.store.Logs(c.Request.Context(), limit)
	if err != nil {
		logrus.WithError(err).Error("Failed to list logs")
		utils.ServerErrorResponse(c, utils.CodeBadRequest, nil)
		return
	}
	if logs == nil {
		logs = []models.LogEntry{}
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
