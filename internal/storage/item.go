package storage

import (
	"context"
	"fmt"

	"github.com/pattidev/discordshoppingbot/internal/domain/models"
	"github.com/spf13/cast"
)

// ItemStorage описывает методы для работы с листом товаров (Items).
type ItemStorage interface {
	// ListItems возвращает все товары в порядке строк листа, без кэширования
	ListItems(ctx context.Context) ([]*models.ShopItem, error)
}

// itemRepository — конкретная реализация интерфейса ItemStorage.
type itemRepository struct {
	values ValuesAPI
	sheet  string // имя листа, например "Items"
}

// NewItemRepository создаёт новый репозиторий товаров.
func NewItemRepository(values ValuesAPI, sheet string) ItemStorage {
	return &itemRepository{values: values, sheet: sheet}
}

// ListItems читает лист целиком, пропуская заголовок и строки, в которых
// заполнено меньше трёх колонок (name, price, role_id — обязательные).
// Нечисловая цена или role_id — ошибка всего вызова, каталог считается битым.
func (r *itemRepository) ListItems(ctx context.Context) ([]*models.ShopItem, error) {
	rows, err := r.values.Get(ctx, r.sheet+"!A:E")
	if err != nil {
		return nil, err
	}

	items := make([]*models.ShopItem, 0, len(rows))
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 3 {
			continue
		}

		price, err := cast.ToIntE(row[1])
		if err != nil {
			return nil, fmt.Errorf("malformed price in row %d: %w", i+1, err)
		}
		roleID, err := cast.ToInt64E(row[2])
		if err != nil {
			return nil, fmt.Errorf("malformed role id in row %d: %w", i+1, err)
		}

		item := &models.ShopItem{
			Name:        cast.ToString(row[0]),
			Price:       price,
			RoleID:      roleID,
			Description: models.DefaultItemDescription,
		}
		if len(row) > 3 {
			item.Image = cast.ToString(row[3])
		}
		if len(row) > 4 && cast.ToString(row[4]) != "" {
			item.Description = cast.ToString(row[4])
		}
		items = append(items, item)
	}
	return items, nil
}
