// internal/marketplace/mock.go
package marketplace

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/hautevault/boutique-backend/internal/models"
)

const mockListingsPerSearch = 15

var mockBrands = map[models.Category][]string{
	models.CategoryWatch: {
		"Rolex", "Omega", "Cartier", "Patek Philippe", "Audemars Piguet", "Richard Mille",
	},
	models.CategoryHandbag: {
		"Hermès Birkin", "Chanel Classic", "LV Keepall", "Gucci Jackie", "Dior Lady",
	},
	models.CategoryJewellery: {
		"Cartier Love", "Tiffany T-Square", "VCA Alhambra", "Bvlgari Serpenti",
	},
}

var mockImages = map[models.Category][]string{
	models.CategoryWatch: {
		"https://images.unsplash.com/photo-1547996160-81dfa63595dd",
		"https://images.unsplash.com/photo-1614164185128-e4ec99c436d7",
		"https://images.unsplash.com/photo-1523170335258-f5ed11844a49",
		"https://images.unsplash.com/photo-1524592094714-0f0654e20314",
	},
	models.CategoryHandbag: {
		"https://images.unsplash.com/photo-1584917865442-de89df76afd3",
		"https://images.unsplash.com/photo-1548036328-c9fa89d128fa",
		"https://images.unsplash.com/photo-1591348278863-a8fb3887e2aa",
	},
	models.CategoryJewellery: {
		"https://images.unsplash.com/photo-1602173574767-37ac01994b2a",
		"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338",
		"https://images.unsplash.com/photo-1605100804763-247f67b3557e",
	},
}

var mockNoisePrefixes = []string{"!!!", "RARE", "GRAIL", "STUNNING", "L@@K", "MINT", "FULL SET"}

// Mock produces synthetic listings without touching the network. Every
// call succeeds; there is no pagination and no error path.
type Mock struct {
	rng *rand.Rand
}

func NewMock() *Mock {
	return &Mock{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (m *Mock) Search(_ context.Context, category models.Category, priceMin, priceMax float64) ([]models.Item, error) {
	now := time.Now().UTC()
	items := make([]models.Item, 0, mockListingsPerSearch)

	for i := 0; i < mockListingsPerSearch; i++ {
		brand := lo.Sample(mockBrands[category])
		img := lo.Sample(mockImages[category]) + "?q=80&w=800&auto=format"
		price := float64(int(m.rng.Float64()*(priceMax-priceMin))) + priceMin
		noise := lo.Sample(mockNoisePrefixes)
		year := 2015 + m.rng.Intn(10)

		items = append(items, models.Item{
			EbayItemID:            fmt.Sprintf("item_%012d", m.rng.Int63n(1_000_000_000_000)),
			URL:                   "https://ebay.co.uk/itm/mock",
			TitleRaw:              fmt.Sprintf("%s %s AUTHENTIC %d - INVESTOR PIECE", noise, strings.ToUpper(brand), year),
			PriceGBP:              price,
			ShippingGBP:           0,
			SellerName:            strings.Split(brand, " ")[0] + "_Specialist_UK",
			SellerFeedbackPercent: 99.0 + m.rng.Float64(),
			SellerFeedbackScore:   500 + m.rng.Intn(8000),
			Category:              category,
			LocationCountry:       "GB",
			ImageURLs:             []string{img},
			Status:                "ACTIVE",
			FirstSeenAt:           now.Add(-3 * 24 * time.Hour),
			LastSeenAt:            now,
		})
	}

	return items, nil
}
