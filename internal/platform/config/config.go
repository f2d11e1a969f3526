package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret                  string
	JWTExpiryDuration          time.Duration
	JWTIssuer                  string
	RefreshTokenSecret         string
	RefreshTokenExpiryDuration time.Duration

	// Checkout and payment
	TaxRate            decimal.Decimal
	QRISExpiryDuration time.Duration
	QRCodeBaseURL      string

	// Dashboard
	LowStockThreshold    int
	DashboardRecentLimit int

	// Rate limiting for unauthenticated routes
	RateLimitPeriod   time.Duration
	RateLimitRequests int64

	MigrationsPath string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "pos-backend")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "default_insecure_refresh_secret_please_change_this_!@#$")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("TAX_RATE", "0.11")
	viper.SetDefault("QRIS_EXPIRY_DURATION", "15m")
	viper.SetDefault("QR_CODE_BASE_URL", "https://api.qrserver.com/v1/create-qr-code/")
	viper.SetDefault("LOW_STOCK_THRESHOLD", 5)
	viper.SetDefault("DASHBOARD_RECENT_LIMIT", 5)
	viper.SetDefault("RATE_LIMIT_PERIOD", "1m")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 20)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiryDuration, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiryDuration = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiryDuration.String())
	}
	cfg.RefreshTokenExpiryDuration = refreshExpiryDuration

	taxRateStr := viper.GetString("TAX_RATE")
	taxRate, err := decimal.NewFromString(taxRateStr)
	if err != nil || taxRate.IsNegative() {
		taxRate = decimal.NewFromFloat(0.11)
		log.Printf("Warning: Invalid value for TAX_RATE ('%s'). Defaulting to %s.\n", taxRateStr, taxRate.String())
	}
	cfg.TaxRate = taxRate

	qrisExpiryStr := viper.GetString("QRIS_EXPIRY_DURATION")
	qrisExpiryDuration, err := time.ParseDuration(qrisExpiryStr)
	if err != nil {
		qrisExpiryDuration = 15 * time.Minute
		log.Printf("Warning: Invalid value for QRIS_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", qrisExpiryStr, qrisExpiryDuration.String())
	}
	cfg.QRISExpiryDuration = qrisExpiryDuration
	cfg.QRCodeBaseURL = viper.GetString("QR_CODE_BASE_URL")

	cfg.LowStockThreshold = viper.GetInt("LOW_STOCK_THRESHOLD")
	cfg.DashboardRecentLimit = viper.GetInt("DASHBOARD_RECENT_LIMIT")

	ratePeriodStr := viper.GetString("RATE_LIMIT_PERIOD")
	ratePeriod, err := time.ParseDuration(ratePeriodStr)
	if err != nil {
		ratePeriod = time.Minute
		log.Printf("Warning: Invalid value for RATE_LIMIT_PERIOD ('%s'). Defaulting to %s.\n", ratePeriodStr, ratePeriod.String())
	}
	cfg.RateLimitPeriod = ratePeriod
	cfg.RateLimitRequests = viper.GetInt64("RATE_LIMIT_REQUESTS")

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	return cfg, nil
}
