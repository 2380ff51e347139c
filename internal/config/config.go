package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	Keys APIKeys
	Ai   AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	SeedNotebooks      bool
}

type APIKeys struct {
	GoogleGemini string
}

type AIConfig struct {
	BaseURL   string
	ChatModel string
	TTSModel  string
	TTSVoice  string
	GuideTTL  time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			SeedNotebooks:      getEnvAsBool("SEED_NOTEBOOKS", false),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			BaseURL:   getEnv("GEMINI_BASE_URL", ""),
			ChatModel: getEnv("GEMINI_CHAT_MODEL", "gemini-3-flash-preview"),
			TTSModel:  getEnv("GEMINI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
			TTSVoice:  getEnv("GEMINI_TTS_VOICE", "Kore"),
			GuideTTL:  getEnvAsDuration("GUIDE_TTL", 24*time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
