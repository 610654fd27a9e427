package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/pattidev/discordshoppingbot/internal/service"
)

// handlePurchase обрабатывает клик по кнопке покупки.
// Бот только списывает монеты; выдачу роли делает внешний сервис с правами на гильдию.
func handlePurchase(ctx context.Context, logger *slog.Logger, purchaseSvc service.PurchaseService, roleID int64, i *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	user, err := interactionUser(i)
	if err != nil {
		return nil, err
	}

	result, err := purchaseSvc.Buy(ctx, user.ID, roleID)
	switch {
	case errors.Is(err, service.ErrInsufficientFunds):
		return ephemeralContent("You do not have enough coins to purchase this role."), nil
	case errors.Is(err, service.ErrItemNotFound):
		return ephemeralContent("This item is no longer available."), nil
	case err != nil:
		return nil, err
	}

	logger.Info("purchase succeeded",
		slog.String("userID", user.ID),
		slog.String("item", result.Item.Name),
		slog.Int("newBalance", result.NewBalance),
	)
	return ephemeralContent(fmt.Sprintf("You have successfully purchased the %s role!", result.Item.Name)), nil
}
