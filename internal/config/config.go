// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Admin       AdminConfig
	Marketplace MarketplaceConfig
	AI          AIConfig
	Payment     PaymentConfig
	AWS         AWSConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type AdminConfig struct {
	Password     string
	PasswordHash string // optional bcrypt hash; takes precedence over Password
	JWTSecret    string
	TokenTTL     int // in hours
}

type MarketplaceConfig struct {
	EbayAppID  string
	EbayCertID string
	BaseURL    string
}

type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type PaymentConfig struct {
	StripeSecretKey string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	CloudFrontURL   string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", ""),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "boutique"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		Admin: AdminConfig{
			Password:     getEnv("ADMIN_PASSWORD", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:    getEnv("ADMIN_JWT_SECRET", "dev-secret-change-in-production"),
			TokenTTL:     getEnvAsInt("ADMIN_TOKEN_TTL", 12),
		},
		Marketplace: MarketplaceConfig{
			EbayAppID:  getEnv("EBAY_APP_ID", ""),
			EbayCertID: getEnv("EBAY_CERT_ID", ""),
			BaseURL:    getEnv("EBAY_BASE_URL", "https://api.ebay.com"),
		},
		AI: AIConfig{
			APIKey:  getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
			Model:   getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
			BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		},
		Payment: PaymentConfig{
			StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "eu-west-2"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "boutique-tiles"),
			CloudFrontURL:   getEnv("AWS_CLOUDFRONT_URL", ""),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.Admin.JWTSecret == "dev-secret-change-in-production" {
			return fmt.Errorf("ADMIN_JWT_SECRET must be changed in production")
		}
		if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
			return fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required in production")
		}
	}
	return nil
}

func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

// Configured reports whether database credentials were provided. Without
// them the server runs on the ephemeral in-memory store.
func (d *DatabaseConfig) Configured() bool {
	return d.Host != ""
}

// Configured reports whether real eBay credentials were provided; the
// mock marketplace client is used otherwise.
func (m *MarketplaceConfig) Configured() bool {
	return m.EbayAppID != "" && m.EbayCertID != ""
}

func (p *PaymentConfig) Configured() bool {
	return p.StripeSecretKey != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
