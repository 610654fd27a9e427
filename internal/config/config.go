package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"flag"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string           `yaml:"env" env-default:"development"` // environment
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Discord    DiscordConfig    `yaml:"discord"`
	Sheets     SheetsConfig     `yaml:"sheets"`
}

// HTTPServerConfig структура http сервера
type HTTPServerConfig struct {
	Address     string        `yaml:"address" env:"ADDRESS" env-default:"0.0.0.0:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// DiscordConfig — учетные данные приложения Discord.
// Публичный ключ приходит hex-строкой, как его отдает Developer Portal.
type DiscordConfig struct {
	ClientID  string `yaml:"client_id" env:"DISCORD_CLIENT_ID" env-required:"true"`
	PublicKey string `yaml:"-" env:"DISCORD_PUBLIC_KEY" env-required:"true" validate:"required,hexadecimal,len=64"`
	BotToken  string `yaml:"-" env:"DISCORD_BOT_TOKEN" env-required:"true"`
}

// SheetsConfig настройка подключения к Google-таблице
type SheetsConfig struct {
	SpreadsheetID string `yaml:"spreadsheet_id" env:"SPREADSHEET_ID" env-required:"true"`
	CurrencySheet string `yaml:"currency_sheet" env-default:"Currency"`
	ItemsSheet    string `yaml:"items_sheet" env-default:"Items"`
	// JSON сервисного аккаунта целиком, как в переменной окружения исходного бота
	Credentials string `yaml:"-" env:"GDRIVE_API_CREDENTIALS" env-required:"true" validate:"required,json"`
}

var validate = validator.New()

// MustLoad - если не загружаем - паникуем
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("CONFIG_PATH not exists")
	}
	return MustLoadByPath(configPath)
}

func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file not found: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can't read config file %s", configPath)
	}

	// Валидация секретов: битый ключ лучше поймать на старте, а не на первом вебхуке
	if err := validate.Struct(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	return &cfg
}

// Ed25519PublicKey декодирует hex-представление публичного ключа приложения
func (c DiscordConfig) Ed25519PublicKey() (ed25519.PublicKey, error) {
	key, err := hex.DecodeString(c.PublicKey)
	if err != nil {
		return nil, err
	}
	return ed25519.PublicKey(key), nil
}
