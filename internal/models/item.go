// internal/models/item.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Item is one discovered (and possibly curated) marketplace listing.
// EbayItemID is the upsert key: the same external listing is never
// stored twice.
type Item struct {
	ID                    uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	EbayItemID            string         `json:"ebayItemId" gorm:"size:64;uniqueIndex;not null"`
	URL                   string         `json:"url" gorm:"size:512"`
	TitleRaw              string         `json:"titleRaw" gorm:"size:512;not null"`
	TitleBoutique         *string        `json:"titleBoutique,omitempty" gorm:"size:255"`
	Description           *string        `json:"description,omitempty" gorm:"type:text"`
	PriceGBP              float64        `json:"priceGbp" gorm:"column:price_gbp;type:decimal(12,2);not null"`
	ShippingGBP           float64        `json:"shippingGbp" gorm:"column:shipping_gbp;type:decimal(12,2)"`
	SellerName            string         `json:"sellerName" gorm:"size:255"`
	SellerFeedbackPercent float64        `json:"sellerFeedbackPercent"`
	SellerFeedbackScore   int            `json:"sellerFeedbackScore"`
	Category              Category       `json:"category" gorm:"type:varchar(20);index"`
	LocationCountry       string         `json:"locationCountry" gorm:"size:2"`
	ImageURLs             pq.StringArray `json:"imageUrls" gorm:"type:text[]"`
	Status                string         `json:"status" gorm:"size:20"`
	FirstSeenAt           time.Time      `json:"firstSeenAt"`
	LastSeenAt            time.Time      `json:"lastSeenAt" gorm:"index"`
	PublishStatus         PublishState   `json:"publishStatus" gorm:"type:varchar(20);default:'UNPUBLISHED';index"`
	Score                 int            `json:"score"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// ItemPatch is the full allow-listed mutation surface for an item.
// Nil fields are left untouched. Arbitrary key/value patches are never
// accepted anywhere.
type ItemPatch struct {
	TitleRaw      *string
	TitleBoutique *string
	Description   *string
	PublishStatus *PublishState
	Score         *int
	PriceGBP      *float64
	ImageURLs     []string
}

// Apply copies the set fields onto the item.
func (p ItemPatch) Apply(i *Item) {
	if p.TitleRaw != nil {
		i.TitleRaw = *p.TitleRaw
	}
	if p.TitleBoutique != nil {
		i.TitleBoutique = p.TitleBoutique
	}
	if p.Description != nil {
		i.Description = p.Description
	}
	if p.PublishStatus != nil {
		i.PublishStatus = *p.PublishStatus
	}
	if p.Score != nil {
		i.Score = *p.Score
	}
	if p.PriceGBP != nil {
		i.PriceGBP = *p.PriceGBP
	}
	if p.ImageURLs != nil {
		i.ImageURLs = p.ImageURLs
	}
	i.UpdatedAt = time.Now().UTC()
}
