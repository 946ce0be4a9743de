// internal/services/tile_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"html"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/hautevault/boutique-backend/internal/config"
	"github.com/hautevault/boutique-backend/internal/models"
)

// TileService renders a square SVG storefront tile for a curated item
// and uploads it to S3. Without AWS credentials it only returns the
// path the frontend would serve locally.
type TileService struct {
	s3Client *s3.S3
	bucket   string
	region   string
	cdnURL   string
}

func NewTileService(cfg *config.Config) (*TileService, error) {
	svc := &TileService{
		bucket: cfg.AWS.S3Bucket,
		region: cfg.AWS.Region,
		cdnURL: cfg.AWS.CloudFrontURL,
	}

	if cfg.AWS.AccessKeyID == "" {
		logrus.Warn("AWS credentials not set, tiles will not be uploaded")
		return svc, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	svc.s3Client = s3.New(sess)
	return svc, nil
}

// Render produces the tile SVG and uploads it when S3 is configured.
// Returns the public URL of the tile.
func (s *TileService) Render(ctx context.Context, item *models.Item) (string, error) {
	key := fmt.Sprintf("tiles/%s.svg", item.ID)
	svg := renderTileSVG(item)

	if s.s3Client == nil {
		return "/" + key, nil
	}

	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(svg)),
		ContentType: aws.String("image/svg+xml"),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload tile: %w", err)
	}

	if s.cdnURL != "" {
		return fmt.Sprintf("%s/%s", s.cdnURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func renderTileSVG(item *models.Item) string {
	title := item.TitleRaw
	if item.TitleBoutique != nil && *item.TitleBoutique != "" {
		title = *item.TitleBoutique
	}

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="1200" viewBox="0 0 1200 1200">
  <rect width="1200" height="1200" fill="#0f0e0c"/>
  <rect x="40" y="40" width="1120" height="1120" fill="none" stroke="#b59a5b" stroke-width="2"/>
  <text x="600" y="540" text-anchor="middle" fill="#f5f1e8" font-family="Georgia, serif" font-size="52">%s</text>
  <text x="600" y="640" text-anchor="middle" fill="#b59a5b" font-family="Georgia, serif" font-size="40">£%.0f</text>
  <text x="600" y="1100" text-anchor="middle" fill="#6e675c" font-family="Georgia, serif" font-size="28">%s</text>
</svg>`,
		html.EscapeString(title),
		item.PriceGBP,
		html.EscapeString(string(item.Category)),
	)
}
