package config

import (
	"os"
	"strconv"
	"time"

	"github.com/teheiw192/kcjqr/internal/domain"
)

type Config struct {
	Port          string
	DataDir       string
	DatabasePath  string
	OneBotAPIURL  string
	OneBotToken   string
	AIParserURL   string
	AIParserToken string
	LeadMinutes   int
	PollInterval  time.Duration
	DigestTime    string
	LogLevel      string
	LogFormat     string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		DataDir:       getEnv("DATA_DIR", "./data/kcjqr"),
		DatabasePath:  getEnv("DATABASE_PATH", "./kcjqr.db"),
		OneBotAPIURL:  getEnv("ONEBOT_API_URL", "http://127.0.0.1:5700"),
		OneBotToken:   getEnv("ONEBOT_ACCESS_TOKEN", ""),
		AIParserURL:   getEnv("AI_PARSER_URL", ""),
		AIParserToken: getEnv("AI_PARSER_TOKEN", ""),
		LeadMinutes:   getEnvInt("REMINDER_LEAD_MINUTES", domain.DefaultLeadMinutes),
		PollInterval:  getEnvDuration("POLL_INTERVAL", domain.DefaultPollInterval),
		DigestTime:    getEnv("DAILY_DIGEST_TIME", domain.DefaultDigestTime),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
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
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
