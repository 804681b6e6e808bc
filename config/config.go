package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config is everything main needs to wire the service.
type Config struct {
	Port           int
	AllowedOrigins string
	ServiceToken   string

	StoreDriver     string
	DatabaseURL     string
	CatalogSeedFile string

	LedgerPruneInterval time.Duration

	Images ImageConfig
}

// ImageConfig describes where dog photos live.
type ImageConfig struct {
	CDNBaseURL      string
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	Prefix          string
	URLTTL          time.Duration
}

// R2Enabled reports whether enough credentials are present to presign R2 URLs.
func (c ImageConfig) R2Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.AccessKeySecret != "" && c.Bucket != ""
}

// Load reads a .env file when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (Config, error) {
	cfg := Config{
		AllowedOrigins:  valueOrDefault("ALLOWED_ORIGINS", "http://localhost:3000"),
		ServiceToken:    os.Getenv("SERVICE_TOKEN"),
		StoreDriver:     strings.ToLower(valueOrDefault("STORE_DRIVER", DriverPostgres)),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		CatalogSeedFile: os.Getenv("CATALOG_SEED_FILE"),
		Images: ImageConfig{
			CDNBaseURL:      strings.TrimRight(os.Getenv("CDN_BASE_URL"), "/"),
			AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			AccessKeySecret: os.Getenv("R2_ACCESS_KEY_SECRET"),
			Bucket:          os.Getenv("R2_BUCKET_NAME"),
			Prefix:          strings.Trim(valueOrDefault("IMAGE_PREFIX", "images/dogs"), "/"),
		},
	}

	port, err := parsePort("PORT", 5200)
	if err != nil {
		return Config{}, err
	}
	cfg.Port = port

	if cfg.LedgerPruneInterval, err = parseDuration("LEDGER_PRUNE_INTERVAL", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.Images.URLTTL, err = parseDuration("IMAGE_URL_TTL", 15*time.Minute); err != nil {
		return Config{}, err
	}

	switch cfg.StoreDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL environment variable not set")
		}
	case DriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.ServiceToken == "" {
		return Config{}, fmt.Errorf("SERVICE_TOKEN environment variable not set")
	}

	return cfg, nil
}

// Origins splits AllowedOrigins and trims each entry.
func (c Config) Origins() []string {
	var out []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parsePort(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("port %d is out of range", port)
	}
	return port, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}
