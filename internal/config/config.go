package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Ai       AIConfig
	Sessions SessionConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type AIConfig struct {
	LLMProvider    string // "openai", "ollama", or "" for fallback-only mode
	LLMModel       string // e.g. "gpt-3.5-turbo", "qwen2.5"
	LLMBaseURL     string
	OpenAIAPIKey   string
	TimeoutSeconds int // hard cap on a single model call
}

type SessionConfig struct {
	DefaultMaxAgeHours int // default age threshold for cleanup requests
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", ""),
			LLMModel:       getEnv("LLM_MODEL", ""),
			LLMBaseURL:     getEnv("LLM_BASE_URL", ""),
			OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
			TimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 60),
		},
		Sessions: SessionConfig{
			DefaultMaxAgeHours: getEnvAsInt("SESSION_MAX_AGE_HOURS", 24),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
