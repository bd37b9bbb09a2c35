package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Server settings
	ServerAddr string
	AppURL     string

	// Database
	DatabasePath string

	// Sessions
	SessionTTLHours int

	// Email
	SendGridAPIKey string
	EmailFrom      string

	// App settings
	PageSize   int
	StaticPath string
	DevMode    bool
}

func Load() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		AppURL:     getEnv("APP_URL", "http://localhost:8080"),

		DatabasePath: getEnv("DATABASE_PATH", "./data/forum.db"),

		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "notifications@forumapp.com"),

		PageSize:   getEnvInt("PAGE_SIZE", 12),
		StaticPath: getEnv("STATIC_PATH", "./static"),
		DevMode:    getEnv("DEV_MODE", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
