package modelstesting

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/hautevault/boutique-backend/internal/models"
)

// FakeItem returns a models.Item with fake data that passes the default
// ingestion thresholds.
func FakeItem(ops ...func(i *models.Item)) models.Item {
	now := time.Now().UTC()
	item := models.Item{
		ID:                    uuid.New(),
		EbayItemID:            fmt.Sprintf("item_%012d", rand.Int63n(1_000_000_000_000)),
		URL:                   faker.URL(),
		TitleRaw:              faker.Sentence(),
		PriceGBP:              2000 + rand.Float64()*48000,
		ShippingGBP:           0,
		SellerName:            faker.Username(),
		SellerFeedbackPercent: 99 + rand.Float64(),
		SellerFeedbackScore:   500 + rand.Intn(8000),
		Category:              lo.Sample(models.Categories()),
		LocationCountry:       "GB",
		ImageURLs:             []string{faker.URL()},
		Status:                "ACTIVE",
		FirstSeenAt:           now.Add(-72 * time.Hour),
		LastSeenAt:            now,
		PublishStatus:         models.PublishStateUnpublished,
		Score:                 90 + rand.Intn(10),
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	for _, op := range ops {
		op(&item)
	}

	return item
}
