package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/pattidev/discordshoppingbot/internal/service"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const colorGold = 0xFFD700

var coinPrinter = message.NewPrinter(language.English)

// formatCoins форматирует сумму с разделителями тысяч: 1234567 -> "1,234,567"
func formatCoins(amount int) string {
	return coinPrinter.Sprintf("%d", amount)
}

// handleBalanceCommand обрабатывает команду /balance
func handleBalanceCommand(ctx context.Context, logger *slog.Logger, balanceSvc service.BalanceService, i *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	user, err := interactionUser(i)
	if err != nil {
		return nil, err
	}

	balance, err := balanceSvc.GetBalance(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	logger.Info("balance requested", slog.String("userID", user.ID), slog.Int("balance", balance))

	embed := &discordgo.MessageEmbed{
		Title:       "💰 Your Balance",
		Description: fmt.Sprintf("You currently have **%s coins**", formatCoins(balance)),
		Color:       colorGold,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("")},
		Footer:      &discordgo.MessageEmbedFooter{Text: "Use /shop to browse available items"},
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	}, nil
}
