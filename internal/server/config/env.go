package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first when present, so local setups do not
// need to export anything.
//
// Recognized variables:
//
//	ADDRESS            HTTP bind address (e.g. ":3000")
//	DATABASE_DSN       PostgreSQL DSN
//	SECRET_KEY         token signing secret
//	TOKEN_TTL_MINUTES  session token validity, minutes
//	ALLOWED_ORIGINS    comma-separated origin allow-list
//	DEPLOY_MODE        "development" or "production"
func parseEnv(config *Config) {
	_ = godotenv.Load()

	config.EndpointAddr = getEnv("ADDRESS", config.EndpointAddr)
	config.DatabaseDSN = getEnv("DATABASE_DSN", config.DatabaseDSN)
	config.SecretKey = getEnv("SECRET_KEY", config.SecretKey)

	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		config.AllowedOrigins = SplitOrigins(v)
	}

	if v := os.Getenv("DEPLOY_MODE"); v != "" {
		config.Mode = Mode(v)
	}
}

// SplitOrigins parses a comma-separated origin list, trimming whitespace and
// dropping empty entries.
func SplitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
