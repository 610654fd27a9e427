package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pattidev/discordshoppingbot/internal/domain/models"
	"github.com/pattidev/discordshoppingbot/internal/storage"
)

// BalanceService определяет интерфейс для получения баланса пользователя.
type BalanceService interface {
	GetBalance(ctx context.Context, userID string) (int, error)
}

type balanceService struct {
	log    *slog.Logger
	ledger storage.LedgerStorage
}

func NewBalanceService(log *slog.Logger, ledger storage.LedgerStorage) BalanceService {
	return &balanceService{log: log, ledger: ledger}
}

// GetBalance возвращает текущий баланс пользователя.
// Неизвестный пользователь заводится лениво: при первом обращении создаётся
// строка с нулевым балансом, как и в остальных местах, где баланс читается.
func (s *balanceService) GetBalance(ctx context.Context, userID string) (int, error) {
	const op = "service.BalanceService.GetBalance"
	logger := s.log.With(slog.String("op", op), slog.String("userID", userID))

	account, err := loadOrCreateAccount(ctx, s.ledger, userID)
	if err != nil {
		logger.Error("failed to load account", slog.Any("error", err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return account.Balance, nil
}

// loadOrCreateAccount читает строку пользователя, при её отсутствии создаёт новую с балансом 0
func loadOrCreateAccount(ctx context.Context, ledger storage.LedgerStorage, userID string) (*models.UserAccount, error) {
	account, err := ledger.GetUser(ctx, userID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, err
	}

	account = &models.UserAccount{UserID: userID, Balance: 0}
	if err := ledger.CreateUser(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}
