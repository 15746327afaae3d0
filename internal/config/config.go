package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Telegram TelegramConfig
	Static   StaticConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type TelegramConfig struct {
	// BotToken empty means orders are simulated: the formatted message is
	// returned as a preview instead of being sent.
	BotToken    string
	OrderChatID string
	APIBase     string
	Timeout     time.Duration
}

type StaticConfig struct {
	PublicDir string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Telegram: TelegramConfig{
			BotToken:    getEnv("BOT_TOKEN", ""),
			OrderChatID: getEnv("ORDER_CHAT_ID", ""),
			APIBase:     getEnv("TELEGRAM_API_BASE", "https://api.telegram.org"),
			Timeout:     getEnvDuration("TELEGRAM_TIMEOUT", 10*time.Second),
		},
		Static: StaticConfig{
			PublicDir: getEnv("PUBLIC_DIR", "public"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
