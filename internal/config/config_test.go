package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/pattidev/discordshoppingbot/internal/config"
	"github.com/stretchr/testify/assert"
)

// валидный hex-ключ нужной длины для проверок конфигурации
const testPublicKeyHex = "9c3fcd1556345c2c544c9a45b7ec6d5b7a1c6dbb86183e0b4a1d4dcbd4b1a0f3"

func TestMustLoadByPath_Success(t *testing.T) {
	// Устанавливаем обязательные переменные окружения
	os.Setenv("DISCORD_CLIENT_ID", "123456789")
	os.Setenv("DISCORD_PUBLIC_KEY", testPublicKeyHex)
	os.Setenv("DISCORD_BOT_TOKEN", "bot-token")
	os.Setenv("GDRIVE_API_CREDENTIALS", `{"type":"service_account"}`)
	defer os.Unsetenv("DISCORD_CLIENT_ID")
	defer os.Unsetenv("DISCORD_PUBLIC_KEY")
	defer os.Unsetenv("DISCORD_BOT_TOKEN")
	defer os.Unsetenv("GDRIVE_API_CREDENTIALS")

	// Пример содержимого конфигурационного файла
	content := `
env: "local"
http_server:
  address: "0.0.0.0:8080"
  timeout: "4s"
  idle_timeout: "60s"
discord:
  client_id: "123456789"
sheets:
  spreadsheet_id: "sheet-id-123"
  currency_sheet: "Currency"
  items_sheet: "Items"
`
	// Создаем временный файл с конфигурацией
	tmpFile, err := os.CreateTemp("", "config_test_*.yaml")
	assert.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	_, err = tmpFile.WriteString(content)
	assert.NoError(t, err)
	err = tmpFile.Close()
	assert.NoError(t, err)

	// Загружаем конфигурацию из временного файла
	cfg := config.MustLoadByPath(tmpFile.Name())

	// Проверяем, что конфигурация загружена корректно
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPServer.Address)
	assert.Equal(t, 4*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, "sheet-id-123", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "Currency", cfg.Sheets.CurrencySheet)
	assert.Equal(t, "Items", cfg.Sheets.ItemsSheet)
	assert.Equal(t, testPublicKeyHex, cfg.Discord.PublicKey)

	key, err := cfg.Discord.Ed25519PublicKey()
	assert.NoError(t, err)
	assert.Len(t, key, 32)
}

func TestMustLoadByPath_FileNotFound(t *testing.T) {
	// Ожидаем панику, если файла не существует
	assert.Panics(t, func() {
		config.MustLoadByPath("non_existent_config.yaml")
	})
}
