// internal/store/gorm.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hautevault/boutique-backend/internal/models"
)

// DB is the Postgres-backed store.
type DB struct {
	db *gorm.DB
}

func NewDB(db *gorm.DB) *DB {
	return &DB{db: db}
}

func (s *DB) ListItems(ctx context.Context, publishedOnly bool) ([]models.Item, error) {
	query := s.db.WithContext(ctx).Model(&models.Item{}).Order("last_seen_at DESC")
	if publishedOnly {
		query = query.Where("publish_status = ?", models.PublishStatePublished)
	}

	var items []models.Item
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (s *DB) GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

func (s *DB) UpsertItems(ctx context.Context, items []models.Item) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ebay_item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"price_gbp", "shipping_gbp", "seller_name",
			"seller_feedback_percent", "seller_feedback_score",
			"image_urls", "status", "last_seen_at", "updated_at",
		}),
	}).Create(&items)
	if tx.Error != nil {
		return 0, fmt.Errorf("failed to upsert items: %w", tx.Error)
	}
	return int(tx.RowsAffected), nil
}

func (s *DB) UpdateItem(ctx context.Context, id uuid.UUID, patch models.ItemPatch) error {
	updates := patchUpdates(patch)
	if len(updates) == 0 {
		// Still confirm the item exists so the caller gets a 404.
		_, err := s.GetItem(ctx, id)
		return err
	}

	tx := s.db.WithContext(ctx).Model(&models.Item{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("failed to update item: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func patchUpdates(patch models.ItemPatch) map[string]interface{} {
	updates := make(map[string]interface{})
	if patch.TitleRaw != nil {
		updates["title_raw"] = *patch.TitleRaw
	}
	if patch.TitleBoutique != nil {
		updates["title_boutique"] = *patch.TitleBoutique
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.PublishStatus != nil {
		updates["publish_status"] = *patch.PublishStatus
	}
	if patch.Score != nil {
		updates["score"] = *patch.Score
	}
	if patch.PriceGBP != nil {
		updates["price_gbp"] = *patch.PriceGBP
	}
	if patch.ImageURLs != nil {
		updates["image_urls"] = pq.StringArray(patch.ImageURLs)
	}
	return updates
}

func (s *DB) GetSettings(ctx context.Context) (models.Settings, error) {
	var record models.SettingsRecord
	err := s.db.WithContext(ctx).First(&record, "id = ?", models.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return record.Data, nil
}

func (s *DB) SaveSettings(ctx context.Context, settings models.Settings) error {
	record := models.SettingsRecord{
		ID:        models.SettingsID,
		Data:      settings,
		UpdatedAt: time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (s *DB) AppendLog(ctx context.Context, level, message string) error {
	entry := models.LogEntry{TS: time.Now().UTC(), Level: level, Message: message}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to append log: %w", err)
	}
	return nil
}

func (s *DB) Logs(ctx context.Context, limit int) ([]models.LogEntry, error) {
	var entries []models.LogEntry
	err := s.db.WithContext(ctx).Order("ts DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}
	return entries, nil
}

func (s *DB) Persistent() bool { return true }
