package config

import (
	"os"
	"strings"
)

type Config struct {
	TelegramToken string
	DBPath        string
	AWSRegion     string
	BotMention    string // mention that triggers the photo pipeline
	WeeklyDigest  bool
}

func Load() Config {
	return Config{
		TelegramToken: getBotToken(),
		DBPath:        getEnv("RINGFIT_DB", "ringfit.db"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		BotMention:    getEnv("BOT_MENTION", "@ringfit_together_bot"),
		WeeklyDigest:  getEnv("WEEKLY_DIGEST", "true") == "true",
	}
}

// getBotToken prefers the Docker secret, falling back to the environment.
func getBotToken() string {
	if data, err := os.ReadFile("/run/secrets/telegram_bot_token"); err == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			return token
		}
	}
	return strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
