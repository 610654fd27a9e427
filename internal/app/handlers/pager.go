package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/pattidev/discordshoppingbot/internal/lib/customid"
	"github.com/pattidev/discordshoppingbot/internal/service"
)

// handlePageTurn обрабатывает клики по кнопкам навигации магазина.
// Каталог перечитывается заново, поэтому правки листа Items видны сразу.
// Целевая страница зажимается в допустимый диапазон: устаревший или
// подделанный custom_id не должен увести пейджер за край каталога.
func handlePageTurn(ctx context.Context, logger *slog.Logger, shopSvc service.ShopService, id customid.ComponentID, i *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	items, err := shopSvc.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return ephemeralContent("The shop is currently empty."), nil
	}

	newPage := id.Page + 1
	if id.Kind == customid.KindPrevPage {
		newPage = id.Page - 1
	}
	totalPages := service.TotalPages(len(items))
	newPage = service.ClampPage(newPage, totalPages)
	logger.Info("page turn", slog.Int("from", id.Page), slog.Int("to", newPage))

	// Embed исходного сообщения сохраняется, переписывается только поле с номером страницы
	if i.Message == nil || len(i.Message.Embeds) == 0 {
		return nil, fmt.Errorf("component interaction has no message embed")
	}
	embed := i.Message.Embeds[0]
	for _, field := range embed.Fields {
		if field.Name == pageFieldName {
			field.Value = fmt.Sprintf("%d/%d", newPage+1, totalPages)
		}
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: ShopComponents(items, newPage),
		},
	}, nil
}
