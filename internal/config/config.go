package config

import (
	"fmt"
	"os"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string
	JWTSecret    string
	GeminiAPIKey string

	// Optional integrations
	TelegramBotToken   string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// Locale tag used when sorting grocery lists, e.g. "en" or "pt-BR".
	SortLocale string
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	jwtSecret := os.Getenv("HUB_JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("HUB_JWT_SECRET environment variable not set")
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	dbPath := os.Getenv("HUB_DB_PATH")
	if dbPath == "" {
		dbPath = "data/household.db"
	}

	sortLocale := os.Getenv("HUB_SORT_LOCALE")
	if sortLocale == "" {
		sortLocale = "en"
	}

	return &Config{
		DatabasePath:       dbPath,
		JWTSecret:          jwtSecret,
		GeminiAPIKey:       geminiAPIKey,
		TelegramBotToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		GoogleClientID:     os.Getenv("GOOGLE_OAUTH_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_OAUTH_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_OAUTH_REDIRECT_URL"),
		SortLocale:         sortLocale,
	}, nil
}
