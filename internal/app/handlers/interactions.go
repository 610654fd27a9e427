package handlers

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/pattidev/discordshoppingbot/internal/lib/customid"
	"github.com/pattidev/discordshoppingbot/internal/service"
)

// InteractionsHandler обрабатывает POST /interactions — единственную точку входа вебхуков Discord.
// Запрос проходит две стадии: проверка подписи, затем маршрутизация по типу
// интеракции и custom_id компонента. Подпись невалидна — 401, ошибка обработки — 500.
func InteractionsHandler(
	log *slog.Logger,
	publicKey ed25519.PublicKey,
	balanceSvc service.BalanceService,
	shopSvc service.ShopService,
	purchaseSvc service.PurchaseService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.InteractionsHandler"
		logger := log.With(slog.String("op", op))

		// Оба заголовка подписи обязательны
		if r.Header.Get("X-Signature-Ed25519") == "" || r.Header.Get("X-Signature-Timestamp") == "" {
			logger.Warn("missing signature headers")
			http.Error(w, "missing signature headers", http.StatusUnauthorized)
			return
		}

		// Подпись считается над timestamp + телом запроса; тело после проверки остаётся читаемым
		if !discordgo.VerifyInteraction(r, publicKey) {
			logger.Warn("invalid request signature")
			http.Error(w, "invalid request signature", http.StatusUnauthorized)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("failed to read request body", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		var interaction discordgo.Interaction
		if err := json.Unmarshal(body, &interaction); err != nil {
			logger.Error("failed to parse interaction", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		resp, err := routeInteraction(r.Context(), logger, &interaction, balanceSvc, shopSvc, purchaseSvc)
		if err != nil {
			logger.Error("failed to process interaction", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		// Ответ интеракции уходит телом HTTP-ответа
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}

// routeInteraction выбирает обработчик по типу интеракции и custom_id
func routeInteraction(
	ctx context.Context,
	logger *slog.Logger,
	interaction *discordgo.Interaction,
	balanceSvc service.BalanceService,
	shopSvc service.ShopService,
	purchaseSvc service.PurchaseService,
) (*discordgo.InteractionResponse, error) {
	switch interaction.Type {
	case discordgo.InteractionPing:
		return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}, nil

	case discordgo.InteractionApplicationCommand:
		data := interaction.ApplicationCommandData()
		switch data.Name {
		case "balance":
			return handleBalanceCommand(ctx, logger, balanceSvc, interaction)
		case "shop":
			return handleShopCommand(ctx, logger, balanceSvc, shopSvc, interaction)
		default:
			return nil, fmt.Errorf("unknown command %q", data.Name)
		}

	case discordgo.InteractionMessageComponent:
		id, err := customid.Parse(interaction.MessageComponentData().CustomID)
		if err != nil {
			return nil, err
		}
		switch id.Kind {
		case customid.KindBuy:
			return handlePurchase(ctx, logger, purchaseSvc, id.RoleID, interaction)
		default:
			return handlePageTurn(ctx, logger, shopSvc, id, interaction)
		}

	default:
		return nil, fmt.Errorf("unsupported interaction type %d", interaction.Type)
	}
}

// interactionUser достаёт инициатора: в гильдии он лежит в member, в личке — в user
func interactionUser(i *discordgo.Interaction) (*discordgo.User, error) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User, nil
	}
	if i.User != nil {
		return i.User, nil
	}
	return nil, fmt.Errorf("interaction has no user")
}

// ephemeralContent — короткий текстовый ответ, видимый только автору клика
func ephemeralContent(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
