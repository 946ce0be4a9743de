// internal/services/ingest_service.go
package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/hautevault/boutique-backend/internal/marketplace"
	"github.com/hautevault/boutique-backend/internal/models"
	"github.com/hautevault/boutique-backend/internal/store"
)

type IngestService struct {
	store  store.Store
	market marketplace.Client
}

// PriceOverrides lets a single run narrow or widen the stored price
// bands without touching settings.
type PriceOverrides struct {
	PriceMin map[models.Category]float64 `json:"priceMin,omitempty"`
	PriceMax map[models.Category]float64 `json:"priceMax,omitempty"`
}

type IngestResult struct {
	Discovered int `json:"discovered"`
	Upserted   int `json:"upserted"`
}

func NewIngestService(st store.Store, market marketplace.Client) *IngestService {
	return &IngestService{store: st, market: market}
}

// Run scans every category serially, filters candidates against the
// configured business rules and upserts the survivors. Any upstream or
// persistence error aborts the whole run.
func (s *IngestService) Run(ctx context.Context, overrides PriceOverrides) (*IngestResult, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	blocked := settings.BlockedKeywords()

	if err := s.store.AppendLog(ctx, models.LogLevelInfo, "INGEST: started"); err != nil {
		return nil, err
	}

	var all []models.Item
	for _, category := range models.Categories() {
		priceMin := settings.PriceMin[category]
		if v, ok := overrides.PriceMin[category]; ok {
			priceMin = v
		}
		priceMax := settings.PriceMax[category]
		if v, ok := overrides.PriceMax[category]; ok {
			priceMax = v
		}

		if err := s.store.AppendLog(ctx, models.LogLevelInfo,
			fmt.Sprintf("INGEST: scanning %s (£%.0f-£%.0f)", category, priceMin, priceMax)); err != nil {
			return nil, err
		}

		raw, err := s.market.Search(ctx, category, priceMin, priceMax)
		if err != nil {
			return nil, fmt.Errorf("marketplace search failed for %s: %w", category, err)
		}

		filtered := lo.Filter(raw, func(item models.Item, _ int) bool {
			return passesFilters(item, blocked, settings)
		})

		candidates := lo.Map(filtered, func(item models.Item, _ int) models.Item {
			item.ID = uuid.New()
			item.PublishStatus = models.PublishStateUnpublished
			item.Score = 90 + rand.Intn(10)
			return item
		})

		logrus.WithFields(logrus.Fields{
			"category":   category,
			"raw":        len(raw),
			"candidates": len(candidates),
		}).Info("Category scan complete")

		all = append(all, candidates...)
	}

	count, err := s.store.UpsertItems(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert candidates: %w", err)
	}

	if err := s.store.AppendLog(ctx, models.LogLevelInfo,
		fmt.Sprintf("INGEST: complete; candidates=%d; upserted=%d", len(all), count)); err != nil {
		return nil, err
	}

	return &IngestResult{Discovered: len(all), Upserted: count}, nil
}

// passesFilters applies the three independent ingestion predicates; a
// candidate survives only when all of them pass.
func passesFilters(item models.Item, blocked []string, settings models.Settings) bool {
	title := strings.ToLower(item.TitleRaw)
	if lo.SomeBy(blocked, func(keyword string) bool { return strings.Contains(title, keyword) }) {
		return false
	}
	if item.SellerFeedbackPercent < settings.SellerMinFeedback {
		return false
	}
	if item.SellerFeedbackScore < settings.SellerMinScore {
		return false
	}
	return true
}
