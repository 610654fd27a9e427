package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pattidev/discordshoppingbot/internal/domain/models"
	"github.com/pattidev/discordshoppingbot/internal/storage"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrItemNotFound      = errors.New("item not found")
)

// PurchaseResult — итог успешной покупки
type PurchaseResult struct {
	Item       *models.ShopItem
	NewBalance int
}

// PurchaseService определяет интерфейс для покупки роли из магазина.
type PurchaseService interface {
	Buy(ctx context.Context, userID string, roleID int64) (*PurchaseResult, error)
}

type purchaseService struct {
	log    *slog.Logger
	ledger storage.LedgerStorage
	items  storage.ItemStorage

	// у таблицы нет транзакций и блокировок строк, поэтому последовательность
	// "прочитать баланс — проверить — перезаписать" сериализуется на нашей стороне,
	// отдельным мьютексом на пользователя
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewPurchaseService(log *slog.Logger, ledger storage.LedgerStorage, items storage.ItemStorage) PurchaseService {
	return &purchaseService{
		log:       log,
		ledger:    ledger,
		items:     items,
		userLocks: make(map[string]*sync.Mutex),
	}
}

func (s *purchaseService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// Buy осуществляет покупку роли: проверяет средства и списывает цену с баланса.
// Саму роль бот не выдает — этим занимается внешний сервис с правами на гильдию.
func (s *purchaseService) Buy(ctx context.Context, userID string, roleID int64) (*PurchaseResult, error) {
	const op = "service.PurchaseService.Buy"
	logger := s.log.With(slog.String("op", op), slog.String("userID", userID), slog.Int64("roleID", roleID))
	logger.Info("starting purchase")

	// каталог перечитывается на каждую покупку, товар ищем по ID роли из custom_id
	items, err := s.items.ListItems(ctx)
	if err != nil {
		logger.Error("failed to list items", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to list items: %w", op, err)
	}

	var item *models.ShopItem
	for _, it := range items {
		if it.RoleID == roleID {
			item = it
			break
		}
	}
	if item == nil {
		logger.Warn("item not found in catalog")
		return nil, fmt.Errorf("%s: %w", op, ErrItemNotFound)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	account, err := loadOrCreateAccount(ctx, s.ledger, userID)
	if err != nil {
		logger.Error("failed to load account", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to load account: %w", op, err)
	}

	// Проверяем, достаточно ли средств
	if account.Balance < item.Price {
		logger.Warn("insufficient funds", slog.Int("balance", account.Balance), slog.Int("price", item.Price))
		return nil, fmt.Errorf("%s: %w", op, ErrInsufficientFunds)
	}

	newBalance := account.Balance - item.Price
	if err := s.ledger.UpdateBalance(ctx, userID, newBalance); err != nil {
		logger.Error("failed to update balance", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to update balance: %w", op, err)
	}

	logger.Info("purchase completed successfully", slog.Int("newBalance", newBalance))
	return &PurchaseResult{Item: item, NewBalance: newBalance}, nil
}
