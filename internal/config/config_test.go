package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("ORDER_CHAT_ID", "")
	t.Setenv("PUBLIC_DIR", "")
	t.Setenv("TELEGRAM_API_BASE", "")
	t.Setenv("TELEGRAM_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Empty(t, cfg.Telegram.BotToken)
	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIBase)
	assert.Equal(t, 10*time.Second, cfg.Telegram.Timeout)
	assert.Equal(t, "public", cfg.Static.PublicDir)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ORDER_CHAT_ID", "-100200")
	t.Setenv("TELEGRAM_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, "-100200", cfg.Telegram.OrderChatID)
	assert.Equal(t, 2*time.Second, cfg.Telegram.Timeout)
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("TELEGRAM_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Telegram.Timeout)
}
