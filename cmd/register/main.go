// Регистрирует slash-команды бота в Discord. Запускается один раз после деплоя:
//
//	go run ./cmd/register -config ./config/local.yaml [-guild GUILD_ID]
//
// Без -guild команды регистрируются глобально (Discord раскатывает их до часа).
package main

import (
	"flag"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type registerConfig struct {
	ClientID string `env:"DISCORD_CLIENT_ID" env-required:"true"`
	BotToken string `env:"DISCORD_BOT_TOKEN" env-required:"true"`
}

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "balance",
		Description: "Check your coin balance.",
	},
	{
		Name:        "shop",
		Description: "Browse the item shop.",
	},
}

func main() {
	var guildID string
	flag.StringVar(&guildID, "guild", "", "guild id for guild-scoped commands (empty for global)")
	flag.Parse()

	_ = godotenv.Load()

	var cfg registerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	registered, err := session.ApplicationCommandBulkOverwrite(cfg.ClientID, guildID, commands)
	if err != nil {
		log.Fatalf("command registration: %v", err)
	}

	for _, cmd := range registered {
		log.Printf("registered /%s", cmd.Name)
	}
}
