// internal/ai/copywriter.go
package ai

import (
	"context"
	"errors"

	"github.com/hautevault/boutique-backend/internal/models"
)

// ErrNotConfigured is returned when no Gemini API key is present.
// Curation has no offline fallback.
var ErrNotConfigured = errors.New("missing GEMINI_API_KEY")

// NormalizedData is the structured extraction of a raw listing title.
type NormalizedData struct {
	Brand                  string `json:"brand"`
	Model                  string `json:"model"`
	Reference              string `json:"reference,omitempty"`
	Year                   string `json:"year,omitempty"`
	Material               string `json:"material,omitempty"`
	Condition              string `json:"condition"`
	AuthenticityGuaranteed bool   `json:"authenticityGuaranteed"`
}

// CopyData is the boutique marketing copy generated from normalized
// fields.
type CopyData struct {
	SalesTitle      string   `json:"sales_title"`
	Bullets         []string `json:"bullets"`
	LongDescription string   `json:"long_description"`
	SEOTitle        string   `json:"seo_title"`
	SEODescription  string   `json:"seo_description"`
}

// Copywriter is the two-stage curation pipeline: structured extraction
// from the raw title, then marketing copy from the extraction.
type Copywriter interface {
	Normalize(ctx context.Context, category models.Category, rawTitle string) (*NormalizedData, error)
	GenerateCopy(ctx context.Context, category models.Category, data *NormalizedData) (*CopyData, error)
}
