package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	JWTSecret      string
	GeminiAPIKey   string
	Port           string
	AllowedOrigins []string
}

// defaultOrigins matches the deployed front-ends; extend via ALLOWED_ORIGINS.
var defaultOrigins = []string{
	"http://localhost:3000",
	"https://chat-bot-nine-pi.vercel.app",
}

// LoadConfig reads the environment (plus an optional .env file). Every
// missing required variable is reported in one message so a misconfigured
// deploy dies with a single clear diagnostic.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DBUser:       getEnv("DB_USER", ""),
		DBPassword:   getEnv("DB_PASSWORD", ""),
		DBHost:       getEnv("DB_HOST", ""),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", ""),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		Port:         getEnv("PORT", "5000"),
	}

	cfg.AllowedOrigins = append([]string{}, defaultOrigins...)
	if extra := getEnv("ALLOWED_ORIGINS", ""); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	required := []struct{ key, value string }{
		{"DB_USER", cfg.DBUser},
		{"DB_HOST", cfg.DBHost},
		{"DB_NAME", cfg.DBName},
		{"JWT_SECRET", cfg.JWTSecret},
		{"GEMINI_API_KEY", cfg.GeminiAPIKey},
	}
	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
