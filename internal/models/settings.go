// internal/models/settings.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Settings is the singleton record controlling ingestion thresholds and
// the display-only commercial parameters. It is saved wholesale, never
// patched field by field.
type Settings struct {
	PriceMin          map[Category]float64 `json:"priceMin" validate:"required"`
	PriceMax          map[Category]float64 `json:"priceMax" validate:"required"`
	PublishTarget     int                  `json:"publishTarget" validate:"min=0"`
	MarginPercent     map[Category]float64 `json:"marginPercent"`
	SellerMinFeedback float64              `json:"sellerMinFeedback" validate:"min=0,max=100"`
	SellerMinScore    int                  `json:"sellerMinScore" validate:"min=0"`
	VatMode           VatMode              `json:"vatMode" validate:"oneof=STANDARD MARGIN_SCHEME"`
	BlockKeywords     string               `json:"blockKeywords"`
}

func DefaultSettings() Settings {
	return Settings{
		PriceMin: map[Category]float64{
			CategoryWatch: 2000, CategoryHandbag: 2000, CategoryJewellery: 2000,
		},
		PriceMax: map[Category]float64{
			CategoryWatch: 50000, CategoryHandbag: 50000, CategoryJewellery: 50000,
		},
		PublishTarget: 80,
		MarginPercent: map[Category]float64{
			CategoryWatch: 15, CategoryHandbag: 20, CategoryJewellery: 25,
		},
		SellerMinFeedback: 99,
		SellerMinScore:    200,
		VatMode:           VatModeMarginScheme,
		BlockKeywords:     "replica,fake,copy,aftermarket,custom,diamond set,ice,lab,moissanite",
	}
}

// BlockedKeywords splits the CSV blocklist into trimmed, case-folded,
// non-empty entries.
func (s Settings) BlockedKeywords() []string {
	var out []string
	for _, k := range strings.Split(s.BlockKeywords, ",") {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

// JSONB column support, same shape as the stored document.
func (s Settings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Settings) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected settings column type %T", value)
	}
	return json.Unmarshal(bytes, s)
}

// SettingsID keys the single settings row.
const SettingsID = "default"

type SettingsRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Data      Settings  `json:"data" gorm:"type:jsonb"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SettingsRecord) TableName() string { return "settings" }
