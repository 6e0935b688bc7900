package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type AppConfig struct {
	// BaseURL of the BMKG public forecast endpoint.
	BaseURL string `validate:"required,url"`

	// RegionCode is the adm4 administrative code of the single tracked
	// location, e.g. "31.74.04.1002".
	RegionCode string `validate:"required"`

	// HTTPTimeout bounds the one outbound fetch.
	HTTPTimeout time.Duration

	// RefreshInterval controls how often the stored bundle is replaced.
	RefreshInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.BaseURL = getenvDefault("BMKG_BASE_URL", "https://api.bmkg.go.id/publik/prakiraan-cuaca")
	cfg.RegionCode = os.Getenv("BMKG_REGION_CODE")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	// Refresh interval: default 30 minutes, the upstream publishes slowly.
	intervalStr := getenvDefault("REFRESH_INTERVAL", "30m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.Port = getenvDefault("PORT", "8080")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
