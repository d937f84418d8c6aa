package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// External rate provider
	RatesAPIBaseURL string
	RatesAPIKey     string
	RatesAPITimeout time.Duration

	// Rate resolution policy
	RateCacheTTL       time.Duration
	ProviderCallLimit  int
	ProviderCallWindow time.Duration

	// HTTP surface limiting (ulule formatted rate, e.g. "120-M")
	APIRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATES_API_BASE_URL", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("RATES_API_KEY", "")
	viper.SetDefault("RATES_API_TIMEOUT", "10s")
	viper.SetDefault("RATE_CACHE_TTL", "6h")
	viper.SetDefault("PROVIDER_CALL_LIMIT", 30)
	viper.SetDefault("PROVIDER_CALL_WINDOW", "1m")
	viper.SetDefault("API_RATE_LIMIT", "120-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.RatesAPIBaseURL = viper.GetString("RATES_API_BASE_URL")
	cfg.RatesAPIKey = viper.GetString("RATES_API_KEY")
	if cfg.RatesAPIKey == "" {
		log.Println("Warning: RATES_API_KEY not set. External rate fetches will fail.")
	}

	cfg.RatesAPITimeout = parseDurationOr("RATES_API_TIMEOUT", 10*time.Second)
	cfg.RateCacheTTL = parseDurationOr("RATE_CACHE_TTL", 6*time.Hour)
	cfg.ProviderCallWindow = parseDurationOr("PROVIDER_CALL_WINDOW", time.Minute)

	cfg.ProviderCallLimit = viper.GetInt("PROVIDER_CALL_LIMIT")
	if cfg.ProviderCallLimit <= 0 {
		cfg.ProviderCallLimit = 30
		log.Printf("Warning: Invalid PROVIDER_CALL_LIMIT. Defaulting to %d.\n", cfg.ProviderCallLimit)
	}

	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
