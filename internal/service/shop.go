package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pattidev/discordshoppingbot/internal/domain/models"
	"github.com/pattidev/discordshoppingbot/internal/storage"
)

// ItemsPerPage — сколько товаров показывается на одной странице магазина
const ItemsPerPage = 3

// ShopService определяет интерфейс для чтения каталога магазина.
type ShopService interface {
	// ListItems всегда читает каталог заново — правки листа видны на следующем клике
	ListItems(ctx context.Context) ([]*models.ShopItem, error)
}

type shopService struct {
	log   *slog.Logger
	items storage.ItemStorage
}

func NewShopService(log *slog.Logger, items storage.ItemStorage) ShopService {
	return &shopService{log: log, items: items}
}

func (s *shopService) ListItems(ctx context.Context) ([]*models.ShopItem, error) {
	const op = "service.ShopService.ListItems"

	items, err := s.items.ListItems(ctx)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to list items", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// TotalPages считает число страниц для itemCount товаров (округление вверх)
func TotalPages(itemCount int) int {
	return (itemCount + ItemsPerPage - 1) / ItemsPerPage
}

// ClampPage приводит номер страницы к допустимому диапазону [0, totalPages-1].
// Подделанный или устаревший custom_id не должен выводить пейджер за край каталога.
func ClampPage(page, totalPages int) int {
	if page < 0 || totalPages <= 0 {
		return 0
	}
	if page > totalPages-1 {
		return totalPages - 1
	}
	return page
}

// PageItems возвращает срез товаров для страницы page
func PageItems(items []*models.ShopItem, page int) []*models.ShopItem {
	start := page * ItemsPerPage
	if start >= len(items) {
		return nil
	}
	end := start + ItemsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
