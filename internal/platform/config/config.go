package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/daily_sales_posting/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	LogLevel           string
	JWTSecret          string
	JWTIssuer          string
	CronSecretHash     string
	CORSAllowedOrigins []string
	RateLimit          string
	MigrationsPath     string

	DefaultCurrency  string
	CurrencyCacheTTL time.Duration

	Scheduler domain.SchedulerConfig
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "daily-sales-posting")
	v.SetDefault("CRON_SECRET_HASH", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("RATE_LIMIT", "30-M")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("DEFAULT_CURRENCY", "AED")
	v.SetDefault("CURRENCY_CACHE_TTL", "10m")
	v.SetDefault("SCHEDULER_ENABLED", true)
	v.SetDefault("SCHEDULER_TIMEZONE", "Asia/Dubai")
	v.SetDefault("SCHEDULER_TARGET_TIME", "23:59")
	v.SetDefault("SCHEDULER_ORGANIZATION_IDS", "")
	v.SetDefault("SCHEDULER_RETRY_ATTEMPTS", 3)
	v.SetDefault("SCHEDULER_RETRY_DELAY", domain.DefaultRetryDelay.String())
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		CronSecretHash:     v.GetString("CRON_SECRET_HASH"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:          v.GetString("RATE_LIMIT"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		DefaultCurrency:    strings.ToUpper(v.GetString("DEFAULT_CURRENCY")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Authenticated API routes will reject every token.")
	}
	if cfg.CronSecretHash == "" {
		log.Println("Warning: CRON_SECRET_HASH not set. The cron trigger route is disabled.")
	}

	cacheTTL, err := time.ParseDuration(v.GetString("CURRENCY_CACHE_TTL"))
	if err != nil {
		cacheTTL = 10 * time.Minute
		log.Printf("Warning: Invalid value for CURRENCY_CACHE_TTL ('%s'). Defaulting to %s.\n", v.GetString("CURRENCY_CACHE_TTL"), cacheTTL)
	}
	cfg.CurrencyCacheTTL = cacheTTL

	retryDelay, err := time.ParseDuration(v.GetString("SCHEDULER_RETRY_DELAY"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULER_RETRY_DELAY %q: %w", v.GetString("SCHEDULER_RETRY_DELAY"), err)
	}

	cfg.Scheduler = domain.SchedulerConfig{
		Enabled:         v.GetBool("SCHEDULER_ENABLED"),
		Timezone:        v.GetString("SCHEDULER_TIMEZONE"),
		TargetTime:      v.GetString("SCHEDULER_TARGET_TIME"),
		OrganizationIDs: splitList(v.GetString("SCHEDULER_ORGANIZATION_IDS")),
		RetryAttempts:   v.GetInt("SCHEDULER_RETRY_ATTEMPTS"),
		RetryDelay:      retryDelay,
	}

	if err := ValidateSchedulerConfig(cfg.Scheduler); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateSchedulerConfig checks the target time format, attempt bounds and that the timezone loads.
func ValidateSchedulerConfig(sc domain.SchedulerConfig) error {
	if err := validator.New().Struct(sc); err != nil {
		return fmt.Errorf("invalid scheduler configuration: %w", err)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
