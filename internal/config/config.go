package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	DBPath    string
	Port      string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment, after loading a .env file
// if one is present. JWT_SECRET has no default; refusing to start beats
// silently signing tokens with a known key.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.New("TOKEN_TTL must be a duration like 24h or 30m")
		}
		ttl = parsed
	}

	return &Config{
		DBPath:    getEnv("DB_PATH", "data/coinsplit.db"),
		Port:      getEnv("PORT", "8080"),
		JWTSecret: secret,
		TokenTTL:  ttl,
	}, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
