// internal/marketplace/ebay.go
package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/hautevault/boutique-backend/internal/config"
	"github.com/hautevault/boutique-backend/internal/models"
)

// eBay Browse API category ids for the UK marketplace.
var ebayCategoryIDs = map[models.Category]string{
	models.CategoryWatch:     "31387",
	models.CategoryHandbag:   "169291",
	models.CategoryJewellery: "164329",
}

var ebaySearchTerms = map[models.Category]string{
	models.CategoryWatch:     "luxury watch",
	models.CategoryHandbag:   "designer handbag",
	models.CategoryJewellery: "fine jewellery",
}

// Ebay searches the Browse API with an application access token
// obtained through the client-credentials grant.
type Ebay struct {
	httpClient *http.Client
	baseURL    string
}

func NewEbay(cfg config.MarketplaceConfig) *Ebay {
	creds := clientcredentials.Config{
		ClientID:     cfg.EbayAppID,
		ClientSecret: cfg.EbayCertID,
		TokenURL:     cfg.BaseURL + "/identity/v1/oauth2/token",
		Scopes:       []string{"https://api.ebay.com/oauth/api_scope"},
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	return &Ebay{
		httpClient: creds.Client(context.Background()),
		baseURL:    cfg.BaseURL,
	}
}

type ebaySearchResponse struct {
	ItemSummaries []ebayItemSummary `json:"itemSummaries"`
}

type ebayItemSummary struct {
	ItemID string `json:"itemId"`
	Title  string `json:"title"`
	Price  struct {
		Value string `json:"value"`
	} `json:"price"`
	ItemWebURL string `json:"itemWebUrl"`
	Seller     struct {
		Username           string `json:"username"`
		FeedbackPercentage string `json:"feedbackPercentage"`
		FeedbackScore      int    `json:"feedbackScore"`
	} `json:"seller"`
	Image struct {
		ImageURL string `json:"imageUrl"`
	} `json:"image"`
	AdditionalImages []struct {
		ImageURL string `json:"imageUrl"`
	} `json:"additionalImages"`
	ShippingOptions []struct {
		ShippingCost struct {
			Value string `json:"value"`
		} `json:"shippingCost"`
	} `json:"shippingOptions"`
	ItemLocation struct {
		Country string `json:"country"`
	} `json:"itemLocation"`
}

func (e *Ebay) Search(ctx context.Context, category models.Category, priceMin, priceMax float64) ([]models.Item, error) {
	params := url.Values{}
	params.Set("q", ebaySearchTerms[category])
	params.Set("category_ids", ebayCategoryIDs[category])
	params.Set("filter", fmt.Sprintf(
		"price:[%.0f..%.0f],priceCurrency:GBP,itemLocationCountry:GB", priceMin, priceMax))
	params.Set("limit", "50")

	endpoint := e.baseURL + "/buy/browse/v1/item_summary/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("X-EBAY-C-MARKETPLACE-ID", "EBAY_GB")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ebay search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("ebay search returned %d: %s", resp.StatusCode, string(body))
	}

	var searchResp ebaySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode ebay response: %w", err)
	}

	now := time.Now().UTC()
	items := make([]models.Item, 0, len(searchResp.ItemSummaries))
	for _, summary := range searchResp.ItemSummaries {
		items = append(items, summaryToItem(summary, category, now))
	}
	return items, nil
}

func summaryToItem(s ebayItemSummary, category models.Category, now time.Time) models.Item {
	price, _ := strconv.ParseFloat(s.Price.Value, 64)
	feedbackPercent, _ := strconv.ParseFloat(s.Seller.FeedbackPercentage, 64)

	var shipping float64
	if len(s.ShippingOptions) > 0 {
		shipping, _ = strconv.ParseFloat(s.ShippingOptions[0].ShippingCost.Value, 64)
	}

	images := []string{}
	if s.Image.ImageURL != "" {
		images = append(images, s.Image.ImageURL)
	}
	for _, img := range s.AdditionalImages {
		images = append(images, img.ImageURL)
	}

	return models.Item{
		EbayItemID:            s.ItemID,
		URL:                   s.ItemWebURL,
		TitleRaw:              s.Title,
		PriceGBP:              price,
		ShippingGBP:           shipping,
		SellerName:            s.Seller.Username,
		SellerFeedbackPercent: feedbackPercent,
		SellerFeedbackScore:   s.Seller.FeedbackScore,
		Category:              category,
		LocationCountry:       s.ItemLocation.Country,
		ImageURLs:             images,
		Status:                "ACTIVE",
		FirstSeenAt:           now,
		LastSeenAt:            now,
	}
}
