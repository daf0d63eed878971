package config

import "os"

type Config struct {
	Port        string
	LogLevel    string
	Environment string
	CORSOrigins string

	YouTubeAPIKey    string
	DefaultChannelID string

	TableBaseURL   string
	TableAPIToken  string
	ContentTableID string

	OpenRouterAPIKey string
	OpenRouterModel  string

	RedisURL string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("ENVIRONMENT", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		YouTubeAPIKey:    getEnv("YOUTUBE_API_KEY", ""),
		DefaultChannelID: getEnv("YOUTUBE_CHANNEL_ID", ""),

		TableBaseURL:   getEnv("TABLE_BASE_URL", ""),
		TableAPIToken:  getEnv("TABLE_API_TOKEN", ""),
		ContentTableID: getEnv("TABLE_CONTENT_TABLE_ID", ""),

		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterModel:  getEnv("OPENROUTER_MODEL", "meta-llama/llama-3.3-70b-instruct:free"),

		RedisURL: getEnv("REDIS_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
