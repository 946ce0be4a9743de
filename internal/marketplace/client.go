// internal/marketplace/client.go
package marketplace

import (
	"context"

	"github.com/hautevault/boutique-backend/internal/config"
	"github.com/hautevault/boutique-backend/internal/models"
)

// Client finds candidate listings for a category inside a price band.
// Two implementations exist: Ebay (Browse API) and Mock (synthetic
// listings for development). The variant is chosen once at startup.
type Client interface {
	Search(ctx context.Context, category models.Category, priceMin, priceMax float64) ([]models.Item, error)
}

func New(cfg config.MarketplaceConfig) Client {
	if cfg.Configured() {
		return NewEbay(cfg)
	}
	return NewMock()
}
