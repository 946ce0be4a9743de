// internal/handlers/settings.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hautevault/boutique-backend/internal/models"
	"github.com/hautevault/boutique-backend/internal/store"
	"github.com/hautevault/boutique-backend/internal/utils"
)

type SettingsHandler struct {
	store store.Store
}

func NewSettingsHandler(st store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to load settings")
		utils.ServerErrorResponse(c, utils.CodeBadRequest, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type settingsUpdateRequest struct {
	Settings models.Settings `json:"settings"`
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req settingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, utils.CodeBadRequest, nil)
		return
	}

	if err := utils.ValidateStruct(req.Settings); err != nil {
		detail := map[string]string{}
		for _, v := range utils.GetValidationErrors(err) {
			detail[v.Field] = v.Message
		}
		utils.ValidationErrorResponse(c, detail)
		return
	}

	if err := h.store.SaveSettings(c.Request.Context(), req.Settings); err != nil {
		logrus.WithError(err).Error("Failed to save settings")
		utils.ServerErrorResponse(c, utils.CodeBadRequest, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
