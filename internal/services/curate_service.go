// internal/services/curate_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hautevault/boutique-backend/internal/ai"
	"github.com/hautevault/boutique-backend/internal/models"
	"github.com/hautevault/boutique-backend/internal/store"
)

// CurateService runs the two-stage copy pipeline for a single item and
// flips it to PUBLISHED on success.
type CurateService struct {
	store  store.Store
	writer ai.Copywriter
	tiles  *TileService
}

func NewCurateService(st store.Store, writer ai.Copywriter, tiles *TileService) *CurateService {
	return &CurateService{store: st, writer: writer, tiles: tiles}
}

// Curate normalizes the raw title, generates boutique copy, stores both
// and publishes the item. Failures leave the item untouched.
func (s *CurateService) Curate(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.store.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.AppendLog(ctx, models.LogLevelInfo,
		fmt.Sprintf("CURATE: start id=%s", id)); err != nil {
		return nil, err
	}

	normalized, err := s.writer.Normalize(ctx, item.Category, item.TitleRaw)
	if err != nil {
		return nil, s.fail(ctx, id, err)
	}

	copyData, err := s.writer.GenerateCopy(ctx, item.Category, normalized)
	if err != nil {
		return nil, s.fail(ctx, id, err)
	}

	title := strings.TrimSpace(normalized.Brand + " " + normalized.Model)
	published := models.PublishStatePublished
	patch := models.ItemPatch{
		TitleBoutique: &title,
		Description:   &copyData.LongDescription,
		PublishStatus: &published,
	}
	if err := s.store.UpdateItem(ctx, id, patch); err != nil {
		return nil, s.fail(ctx, id, err)
	}

	if err := s.store.AppendLog(ctx, models.LogLevelInfo,
		fmt.Sprintf("CURATE: published id=%s", id)); err != nil {
		return nil, err
	}

	// Tile rendering is best-effort; a storefront item without a tile is
	// still sellable.
	if s.tiles != nil {
		updated, err := s.store.GetItem(ctx, id)
		if err == nil {
			if _, tileErr := s.tiles.Render(ctx, updated); tileErr != nil {
				logrus.WithError(tileErr).WithField("item_id", id).Warn("Tile render failed")
				_ = s.store.AppendLog(ctx, models.LogLevelError,
					fmt.Sprintf("CURATE: tile render failed id=%s err=%v", id, tileErr))
			}
		}
	}

	return s.store.GetItem(ctx, id)
}

func (s *CurateService) fail(ctx context.Context, id uuid.UUID, err error) error {
	_ = s.store.AppendLog(ctx, models.LogLevelError,
		fmt.Sprintf("CURATE: failed id=%s err=%v", id, err))
	return fmt.Errorf("curation failed: %w", err)
}
