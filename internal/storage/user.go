package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/pattidev/discordshoppingbot/internal/domain/models"
	"github.com/spf13/cast"
)

var ErrUserNotFound = errors.New("user not found")

// LedgerStorage описывает методы для работы с листом балансов (Currency).
type LedgerStorage interface {
	GetUser(ctx context.Context, userID string) (*models.UserAccount, error)
	CreateUser(ctx context.Context, user *models.UserAccount) error
	// UpdateBalance перезаписывает ячейку баланса существующего пользователя.
	// Отсутствующую строку НЕ создаёт — возвращает ErrUserNotFound.
	UpdateBalance(ctx context.Context, userID string, newBalance int) error
}

type ledgerRepository struct {
	values ValuesAPI
	sheet  string // имя листа, например "Currency"
}

func NewLedgerRepository(values ValuesAPI, sheet string) LedgerStorage {
	return &ledgerRepository{values: values, sheet: sheet}
}

// получение уже существующего пользователя; первая строка листа — заголовок
func (r *ledgerRepository) GetUser(ctx context.Context, userID string) (*models.UserAccount, error) {
	rows, err := r.values.Get(ctx, r.sheet+"!A:B")
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || cast.ToString(row[0]) != userID {
			continue
		}
		balance := 0
		if len(row) > 1 {
			balance, err = cast.ToIntE(row[1])
			if err != nil {
				return nil, fmt.Errorf("malformed balance for user %s: %w", userID, err)
			}
		}
		return &models.UserAccount{UserID: userID, Balance: balance}, nil
	}
	return nil, ErrUserNotFound
}

func (r *ledgerRepository) CreateUser(ctx context.Context, user *models.UserAccount) error {
	row := []interface{}{user.UserID, strconv.Itoa(user.Balance)}
	return r.values.Append(ctx, r.sheet+"!A:B", row)
}

func (r *ledgerRepository) UpdateBalance(ctx context.Context, userID string, newBalance int) error {
	rows, err := r.values.Get(ctx, r.sheet+"!A:B")
	if err != nil {
		return err
	}

	for i := 1; i < len(rows); i++ {
		if len(rows[i]) == 0 || cast.ToString(rows[i][0]) != userID {
			continue
		}
		// нумерация строк в A1-нотации с единицы
		cell := fmt.Sprintf("%s!B%d", r.sheet, i+1)
		return r.values.Update(ctx, cell, []interface{}{strconv.Itoa(newBalance)})
	}
	return ErrUserNotFound
}
