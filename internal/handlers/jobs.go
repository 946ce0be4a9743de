// internal/handlers/jobs.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hautevault/boutique-backend/internal/ai"
	"github.com/hautevault/boutique-backend/internal/services"
	"github.com/hautevault/boutique-backend/internal/store"
	"github.com/hautevault/boutique-backend/internal/utils"
)

type JobsHandler struct {
	ingest *services.IngestService
	curate *services.CurateService
}

func NewJobsHandler(ingest *services.IngestService, curate *services.CurateService) *JobsHandler {
	return &JobsHandler{ingest: ingest, curate: curate}
}

// Ingest triggers a synchronous marketplace scan. An optional body may
// override the stored price bands for this run only.
func (h *JobsHandler) Ingest(c *gin.Context) {
	var overrides services.PriceOverrides
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&overrides); err != nil {
			utils.BadRequestResponse(c, utils.CodeBadRequest, nil)
			return
		}
	}

	result, err := h.ingest.Run(c.Request.Context(), overrides)
	if err != nil {
		logrus.WithError(err).Error("Ingest run failed")
		utils.ServerErrorResponse(c, utils.CodeIngestFailed, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"discovered": result.Discovered,
		"upserted":   result.Upserted,
	})
}

type curateRequest struct {
	ID string `json:"id"`
}

// Curate runs the copy pipeline for one item and publishes it.
func (h *JobsHandler) Curate(c *gin.Context) {
	var req curateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		utils.BadRequestResponse(c, utils.CodeBadRequest, "id is required")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		utils.BadRequestResponse(c, utils.CodeBadRequest, "invalid id")
		return
	}

	item, err := h.curate.Curate(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.NotFoundResponse(c)
		case errors.Is(err, ai.ErrNotConfigured):
			utils.ServerErrorResponse(c, utils.CodeServerNotConfigured, "Missing GEMINI_API_KEY")
		default:
			logrus.WithError(err).WithField("item_id", id).Error("Curation failed")
			utils.ServerErrorResponse(c, utils.CodeCurateFailed, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": item})
}
