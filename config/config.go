package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const devJWTSecret = "change-me-development-only-secret-0123456789"

// RateLimit bounds requests per client IP on the document and loan routes.
type RateLimit struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

// CreditDefaults apply to credit orders that set neither term nor rate.
type CreditDefaults struct {
	TermMonths        int    `yaml:"term_months"`
	AnnualRatePercent string `yaml:"annual_rate_percent"`
}

type Config struct {
	Addr           string         `yaml:"addr"`
	JWTSecret      string         `yaml:"jwt_secret"`
	TokenTTL       time.Duration  `yaml:"token_ttl"`
	RedisAddr      string         `yaml:"redis_addr"`
	CacheTTL       time.Duration  `yaml:"cache_ttl"`
	RateLimit      RateLimit      `yaml:"rate_limit"`
	CreditDefaults CreditDefaults `yaml:"credit_defaults"`
	SeedDemoData   bool           `yaml:"seed_demo_data"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:      ":8080",
		JWTSecret: devJWTSecret,
		TokenTTL:  24 * time.Hour,
		CacheTTL:  10 * time.Minute,
		RateLimit: RateLimit{
			RequestsPerMinute: 60,
			Burst:             10,
		},
		CreditDefaults: CreditDefaults{
			TermMonths:        36,
			AnnualRatePercent: "3.5",
		},
		SeedDemoData: true,
	}
}

// Load reads the YAML file at path (falling back to BANKDOCS_CONFIG when path
// is empty) on top of Default, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("BANKDOCS_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.Addr = getenvDefault("BANKDOCS_ADDR", cfg.Addr)
	cfg.JWTSecret = getenvDefault("BANKDOCS_JWT_SECRET", cfg.JWTSecret)
	cfg.RedisAddr = getenvDefault("BANKDOCS_REDIS_ADDR", cfg.RedisAddr)
	perMinute, err := getenvIntDefault("BANKDOCS_RATE_LIMIT_PER_MINUTE", cfg.RateLimit.RequestsPerMinute)
	if err != nil {
		return cfg, err
	}
	cfg.RateLimit.RequestsPerMinute = perMinute

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr required")
	}
	if len(c.JWTSecret) < 32 {
		return errors.New("config: jwt_secret must be at least 32 bytes")
	}
	if c.TokenTTL <= 0 {
		return errors.New("config: token_ttl must be positive")
	}
	if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("config: rate_limit values must be positive")
	}
	if c.CreditDefaults.TermMonths <= 0 {
		return errors.New("config: credit_defaults.term_months must be positive")
	}
	rate, err := decimal.NewFromString(c.CreditDefaults.AnnualRatePercent)
	if err != nil {
		return fmt.Errorf("config: credit_defaults.annual_rate_percent: %w", err)
	}
	if rate.IsNegative() {
		return errors.New("config: credit_defaults.annual_rate_percent must not be negative")
	}
	return nil
}

// CreditRate returns the validated default annual rate.
func (c Config) CreditRate() decimal.Decimal {
	return decimal.RequireFromString(c.CreditDefaults.AnnualRatePercent)
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvIntDefault(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("config: %s: %w", key, err)
	}
	return parsed, nil
}
