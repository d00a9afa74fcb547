package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// AI provider (OpenAI-compatible)
	OpenAIAPIKey   string
	OpenAIAPIURL   string
	OpenAIModel    string
	OpenAIImageURL string
	ImageModel     string
	AITimeout      time.Duration

	// Recipe image shown when image generation fails
	PlaceholderImageURL string

	// RevenueCat webhook auth
	RevenueCatAuth string

	// Server
	AppName     string
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "littlesous"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),

		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIURL:   getEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAIImageURL: getEnv("OPENAI_IMAGE_URL", "https://api.openai.com/v1/images/generations"),
		ImageModel:     getEnv("IMAGE_MODEL", "dall-e-3"),
		AITimeout:      parseDuration(getEnv("AI_TIMEOUT", "60s")),

		PlaceholderImageURL: getEnv("PLACEHOLDER_IMAGE_URL",
			"https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?auto=format&fit=crop&w=800&h=600"),

		RevenueCatAuth: getEnv("REVENUECAT_WEBHOOK_AUTH", ""),

		AppName:     getEnv("APP_NAME", "Little Sous"),
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}
