// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL (carrier directory; optional, static tables when empty)
	PostgresURI string

	// SerpApi provider
	SerpAPIKey     string
	SerpAPIBaseURL string
	SerpAPITimeout time.Duration

	// Scan cycle
	ScanInterval    time.Duration
	ScanDelay       time.Duration // spacing between monitor queries
	SearchDelay     time.Duration // spacing between interactive leg queries
	SearchDayOffset []int         // days out to scan, e.g. 14, 28, 56

	// Fare trend
	HistoryCapacity int
	AverageWindow   int
	DealThreshold   float64 // deal when price < average * threshold

	// Gateway synthesis
	GatewayAirports []string
	GatewayTopN     int

	// Shopify membership
	ShopifyStore       string
	ShopifyAccessToken string
	MemberTag          string
	SigningSecret      string
	TokenTTL           time.Duration

	// Gmail digest delivery
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	DealsFrom         string
	DealsReplyTo      string

	// Search rate limiting
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 60)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "flyright"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", ""),

		SerpAPIKey:     getEnv("SERPAPI_KEY", ""),
		SerpAPIBaseURL: getEnv("SERPAPI_BASE_URL", "https://serpapi.com/search.json"),
		SerpAPITimeout: time.Duration(getEnvAsInt("SERPAPI_TIMEOUT", 30)) * time.Second,

		ScanInterval:    time.Duration(getEnvAsInt("SCAN_INTERVAL_HOURS", 24)) * time.Hour,
		ScanDelay:       time.Duration(getEnvAsInt("SCAN_DELAY_MS", 500)) * time.Millisecond,
		SearchDelay:     time.Duration(getEnvAsInt("SEARCH_DELAY_MS", 200)) * time.Millisecond,
		SearchDayOffset: []int{14, 28, 56},

		HistoryCapacity: getEnvAsInt("HISTORY_CAPACITY", 90),
		AverageWindow:   getEnvAsInt("AVERAGE_WINDOW", 30),
		DealThreshold:   getEnvAsFloat("DEAL_THRESHOLD", 0.75),

		GatewayAirports: []string{"YYZ", "YUL", "YVR", "MEX", "CUN"},
		GatewayTopN:     getEnvAsInt("GATEWAY_TOP_N", 2),

		ShopifyStore:       getEnv("SHOPIFY_STORE", ""),
		ShopifyAccessToken: getEnv("SHOPIFY_ACCESS_TOKEN", ""),
		MemberTag:          getEnv("FLYRIGHT_MEMBER_TAG", "flyright-member"),
		SigningSecret:      getEnv("SIGNING_SECRET", ""),
		TokenTTL:           time.Duration(getEnvAsInt("TOKEN_TTL_SECONDS", 86400)) * time.Second,

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		DealsFrom:         getEnv("DEALS_FROM", "deals@dipstopmarket.com"),
		DealsReplyTo:      getEnv("DEALS_REPLY_TO", "support@dipstopmarket.com"),

		RateLimitMax:    getEnvAsInt("RATE_LIMIT_MAX", 30),
		RateLimitWindow: time.Duration(getEnvAsInt("RATE_LIMIT_WINDOW_MIN", 60)) * time.Minute,
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
