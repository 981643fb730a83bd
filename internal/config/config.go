package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port           string
	Env            string
	AllowedOrigins []string
	Timezone       string
	TaxRate        float64
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	return Config{
		Port:           getEnv("PORT", "8000"),
		Env:            getEnv("APP_ENV", "development"),
		AllowedOrigins: splitAndTrim(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		Timezone:       getEnv("RESTAURANT_TIMEZONE", "America/New_York"),
		TaxRate:        0.06,
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
