// internal/ai/gemini.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hautevault/boutique-backend/internal/config"
	"github.com/hautevault/boutique-backend/internal/models"
)

// Gemini calls the generateContent REST endpoint with a JSON response
// schema so both stages return strictly parseable output.
type Gemini struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGemini(cfg config.AIConfig) *Gemini {
	return &Gemini{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type generateRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

var normalizeSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"brand":                  map[string]any{"type": "STRING"},
		"model":                  map[string]any{"type": "STRING"},
		"reference":              map[string]any{"type": "STRING"},
		"year":                   map[string]any{"type": "STRING"},
		"material":               map[string]any{"type": "STRING"},
		"condition":              map[string]any{"type": "STRING"},
		"authenticityGuaranteed": map[string]any{"type": "BOOLEAN"},
	},
	"required": []string{"brand", "model", "condition", "authenticityGuaranteed"},
}

var copySchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"sales_title":      map[string]any{"type": "STRING"},
		"bullets":          map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
		"long_description": map[string]any{"type": "STRING"},
		"seo_title":        map[string]any{"type": "STRING"},
		"seo_description":  map[string]any{"type": "STRING"},
	},
	"required": []string{"sales_title", "bullets", "long_description", "seo_title", "seo_description"},
}

func (g *Gemini) Normalize(ctx context.Context, category models.Category, rawTitle string) (*NormalizedData, error) {
	prompt := fmt.Sprintf("Extract data for %s: Title: %q", category, rawTitle)

	var data NormalizedData
	if err := g.generate(ctx, prompt, normalizeSchema, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (g *Gemini) GenerateCopy(ctx context.Context, _ models.Category, data *NormalizedData) (*CopyData, error) {
	prompt := fmt.Sprintf("Write horological narrative for %s %s. Boutique tone.", data.Brand, data.Model)

	var copyData CopyData
	if err := g.generate(ctx, prompt, copySchema, &copyData); err != nil {
		return nil, err
	}
	return &copyData, nil
}

func (g *Gemini) generate(ctx context.Context, prompt string, schema map[string]any, out any) error {
	if g.apiKey == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(generateRequest{
		Contents: []requestContent{{Parts: []requestPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("generation returned %d: %s", resp.StatusCode, string(snippet))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return fmt.Errorf("failed to decode generation response: %w", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("generation returned no candidates")
	}

	text := strings.TrimSpace(genResp.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("malformed generation payload: %w", err)
	}
	return nil
}
