package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/pattidev/discordshoppingbot/internal/domain/models"
	"github.com/pattidev/discordshoppingbot/internal/lib/customid"
	"github.com/pattidev/discordshoppingbot/internal/service"
)

const colorBlue = 0x3498DB

// pageFieldName — имя поля embed'а с номером страницы, его переписывает пейджер
const pageFieldName = "Page"

// handleShopCommand обрабатывает команду /shop: показывает первую страницу каталога
func handleShopCommand(ctx context.Context, logger *slog.Logger, balanceSvc service.BalanceService, shopSvc service.ShopService, i *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	items, err := shopSvc.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return ephemeralContent("The shop is currently empty."), nil
	}

	user, err := interactionUser(i)
	if err != nil {
		return nil, err
	}
	balance, err := balanceSvc.GetBalance(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	logger.Info("shop opened", slog.String("userID", user.ID), slog.Int("items", len(items)))

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{ShopEmbed(balance, 0, service.TotalPages(len(items)))},
			Components: ShopComponents(items, 0),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	}, nil
}

// ShopEmbed строит embed магазина с балансом пользователя и номером страницы
func ShopEmbed(balance, page, totalPages int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🛒 Role Shop",
		Description: "Browse and purchase roles with your currency!",
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Your Balance", Value: fmt.Sprintf("**%s coins**", formatCoins(balance)), Inline: true},
			{Name: pageFieldName, Value: fmt.Sprintf("%d/%d", page+1, totalPages), Inline: true},
		},
	}
}

// ShopComponents строит кнопки страницы page: до трёх кнопок покупки и ряд навигации.
// Кнопки навигации несут страницу-источник клика, адресат вычисляет обработчик.
func ShopComponents(items []*models.ShopItem, page int) []discordgo.MessageComponent {
	totalPages := service.TotalPages(len(items))

	var buyRow discordgo.ActionsRow
	for _, item := range service.PageItems(items, page) {
		buyRow.Components = append(buyRow.Components, discordgo.Button{
			Label:    "Buy " + item.Name,
			Style:    discordgo.SuccessButton,
			CustomID: customid.Buy(item.RoleID).String(),
		})
	}

	navRow := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "◀️",
			Style:    discordgo.SecondaryButton,
			CustomID: customid.PrevPage(page).String(),
			Disabled: page == 0,
		},
		discordgo.Button{
			Label:    "▶️",
			Style:    discordgo.SecondaryButton,
			CustomID: customid.NextPage(page).String(),
			Disabled: page >= totalPages-1,
		},
	}}

	return []discordgo.MessageComponent{buyRow, navRow}
}
