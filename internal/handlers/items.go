// internal/handlers/items.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hautevault/boutique-backend/internal/middleware"
	"github.com/hautevault/boutique-backend/internal/models"
	"github.com/hautevault/boutique-backend/internal/store"
	"github.com/hautevault/boutique-backend/internal/utils"
)

type ItemHandler struct {
	store store.Store
}

func NewItemHandler(st store.Store) *ItemHandler {
	return &ItemHandler{store: st}
}

// List returns the catalogue: everything for admins, published items
// only for everyone else.
func (h *ItemHandler) List(c *gin.Context) {
	publishedOnly := !middleware.IsAdmin(c)

	items, err := h.store.ListItems(c.Request.Context(), publishedOnly)
	if err != nil {
		logrus.WithError(err).Error("Failed to list items")
		utils.ServerErrorResponse(c, utils.CodeBadRequest, nil)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Get returns a single item. Unpublished items are indistinguishable
// from missing ones for non-admin callers.
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, utils.CodeBadRequest, "invalid id")
		return
	}

	item, err := h.store.GetItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c)
			return
		}
		logrus.WithError(err).Error("Failed to get item")
		utils.ServerErrorResponse(c, utils.CodeBadRequest, nil)
		return
	}

	if item.PublishStatus != models.PublishStatePublished && !middleware.IsAdmin(c) {
		utils.NotFoundResponse(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

type itemPatchRequest struct {
	TitleBoutique *string              `json:"titleBoutique"`
	Description   *string              `json:"description"`
	PublishStatus *models.PublishState `json:"publishStatus"`
	Score         *int                 `json:"score"`
}

// Patch applies a partial admin edit to an item. Only the allow-listed
// fields are touched.
func (h *ItemHandler) Patch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, utils.CodeBadRequest, "invalid id")
		return
	}

	var req itemPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, utils.CodeBadRequest, nil)
		return
	}

	if req.PublishStatus != nil && !req.PublishStatus.Valid() {
		utils.BadRequestResponse(c, utils.CodeBadRequest, "invalid publishStatus")
		return
	}

	patch := models.ItemPatch{
		TitleBoutique: req.TitleBoutique,
		Description:   req.Description,
		PublishStatus: req.PublishStatus,
		Score:         req.Score,
	}

	if err := h.store.UpdateItem(c.Request.Context(), id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c)
			return
		}
		logrus.WithError(err).Error("Failed to update item")
		utils.ServerErrorResponse(c, utils.CodeBadRequest, nil)
		return
	}

	item, err := h.store.GetItem(c.Request.Context(), id)
	if err != nil {
		utils.ServerErrorResponse(c, utils.CodeBadRequest, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}
