package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Storage  StorageConfig
	Limits   LimitsConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini string
	Anthropic    string
	OpenAI       string
	ElevenLabs   string
	TurnTopic    string // Internal topic for completed assistant turns
}

type AIConfig struct {
	LLMProvider  string // default provider: "gemini", "claude" or "gpt"
	GeminiModel  string
	ClaudeModel  string
	GPTModel     string
	SttBaseURL   string
	SttModel     string
	SttLanguage  string
	TtsBaseURL   string
	DefaultVoice string
}

type StorageConfig struct {
	BaseURL string
	Bucket  string
	APIKey  string
}

type LimitsConfig struct {
	DailyTurns int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Anthropic:    getEnv("ANTHROPIC_API_KEY", ""),
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
			ElevenLabs:   getEnv("ELEVENLABS_API_KEY", ""),
			TurnTopic:    getEnv("ASSISTANT_TURN_TOPIC_NAME", "ASSISTANT_TURN_COMPLETED"),
		},
		Ai: AIConfig{
			LLMProvider:  getEnv("LLM_PROVIDER", "gemini"),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			ClaudeModel:  getEnv("CLAUDE_MODEL", "claude-3-5-sonnet-20241022"),
			GPTModel:     getEnv("GPT_MODEL", "gpt-4o-mini"),
			SttBaseURL:   getEnv("STT_BASE_URL", "https://api.openai.com"),
			SttModel:     getEnv("STT_MODEL", "whisper-1"),
			SttLanguage:  getEnv("STT_LANGUAGE", "fr"),
			TtsBaseURL:   getEnv("TTS_BASE_URL", "https://api.elevenlabs.io"),
			DefaultVoice: getEnv("TTS_DEFAULT_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
		},
		Storage: StorageConfig{
			BaseURL: getEnv("STORAGE_BASE_URL", ""),
			Bucket:  getEnv("STORAGE_BUCKET", "documents"),
			APIKey:  getEnv("STORAGE_API_KEY", ""),
		},
		Limits: LimitsConfig{
			DailyTurns: getEnvAsInt("ASSISTANT_DAILY_TURN_LIMIT", 100),
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
