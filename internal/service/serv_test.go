package service_test

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/pattidev/discordshoppingbot/internal/domain/models"
	"github.com/pattidev/discordshoppingbot/internal/service"
	"github.com/pattidev/discordshoppingbot/internal/storage"
	"github.com/stretchr/testify/assert"
)

type fakeLedgerRepo struct {
	mu          sync.Mutex
	accounts    map[string]*models.UserAccount // ключ — userID
	createCalls int
}

var _ storage.LedgerStorage = (*fakeLedgerRepo)(nil)

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{accounts: make(map[string]*models.UserAccount)}
}

func (f *fakeLedgerRepo) GetUser(ctx context.Context, userID string) (*models.UserAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[userID]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return &models.UserAccount{UserID: account.UserID, Balance: account.Balance}, nil
}

func (f *fakeLedgerRepo) CreateUser(ctx context.Context, user *models.UserAccount) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	f.accounts[user.UserID] = &models.UserAccount{UserID: user.UserID, Balance: user.Balance}
	return nil
}

func (f *fakeLedgerRepo) UpdateBalance(ctx context.Context, userID string, newBalance int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[userID]
	if !ok {
		return storage.ErrUserNotFound
	}
	account.Balance = newBalance
	return nil
}

func (f *fakeLedgerRepo) balance(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accounts[userID].Balance
}

type fakeItemRepo struct {
	items []*models.ShopItem
}

var _ storage.ItemStorage = (*fakeItemRepo)(nil)

func (f *fakeItemRepo) ListItems(ctx context.Context) ([]*models.ShopItem, error) {
	return f.items, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestBalanceService_UnknownUser_CreatesRow(t *testing.T) {
	fakeRepo := newFakeLedgerRepo()
	balanceSvc := service.NewBalanceService(testLogger(), fakeRepo)
	ctx := context.Background()

	balance, err := balanceSvc.GetBalance(ctx, "111111111111111111")
	assert.NoError(t, err)
	assert.Equal(t, 0, balance, "A new user starts with a zero balance")
	assert.Equal(t, 1, fakeRepo.createCalls, "Exactly one row should be created")

	// Повторный запрос не должен создавать вторую строку
	balance, err = balanceSvc.GetBalance(ctx, "111111111111111111")
	assert.NoError(t, err)
	assert.Equal(t, 0, balance)
	assert.Equal(t, 1, fakeRepo.createCalls)
}

func TestBalanceService_KnownUser(t *testing.T) {
	fakeRepo := newFakeLedgerRepo()
	fakeRepo.accounts["111111111111111111"] = &models.UserAccount{UserID: "111111111111111111", Balance: 250}
	balanceSvc := service.NewBalanceService(testLogger(), fakeRepo)

	balance, err := balanceSvc.GetBalance(context.Background(), "111111111111111111")
	assert.NoError(t, err)
	assert.Equal(t, 250, balance)
	assert.Equal(t, 0, fakeRepo.createCalls, "An existing row must not be touched")
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, service.TotalPages(0))
	assert.Equal(t, 1, service.TotalPages(1))
	assert.Equal(t, 1, service.TotalPages(3))
	assert.Equal(t, 2, service.TotalPages(4))
	assert.Equal(t, 3, service.TotalPages(7))
}

func TestPageItems(t *testing.T) {
	items := make([]*models.ShopItem, 7)
	for i := range items {
		items[i] = &models.ShopItem{Name: string(rune('A' + i))}
	}

	assert.Len(t, service.PageItems(items, 0), 3)
	assert.Len(t, service.PageItems(items, 1), 3)
	assert.Len(t, service.PageItems(items, 2), 1)
	assert.Equal(t, "G", service.PageItems(items, 2)[0].Name)
	assert.Empty(t, service.PageItems(items, 3))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 0, service.ClampPage(-1, 3))
	assert.Equal(t, 1, service.ClampPage(1, 3))
	assert.Equal(t, 2, service.ClampPage(5, 3))
	assert.Equal(t, 0, service.ClampPage(2, 0))
}

func vipCatalog() *fakeItemRepo {
	return &fakeItemRepo{items: []*models.ShopItem{
		{Name: "VIP", Price: 60, RoleID: 555000111, Description: models.DefaultItemDescription},
	}}
}

func TestPurchaseService_Success(t *testing.T) {
	fakeRepo := newFakeLedgerRepo()
	fakeRepo.accounts["111111111111111111"] = &models.UserAccount{UserID: "111111111111111111", Balance: 100}
	purchaseSvc := service.NewPurchaseService(testLogger(), fakeRepo, vipCatalog())

	result, err := purchaseSvc.Buy(context.Background(), "111111111111111111", 555000111)
	assert.NoError(t, err)
	assert.Equal(t, "VIP", result.Item.Name)
	assert.Equal(t, 40, result.NewBalance)
	assert.Equal(t, 40, fakeRepo.balance("111111111111111111"))
}

func TestPurchaseService_InsufficientFunds(t *testing.T) {
	fakeRepo := newFakeLedgerRepo()
	fakeRepo.accounts["111111111111111111"] = &models.UserAccount{UserID: "111111111111111111", Balance: 50}
	purchaseSvc := service.NewPurchaseService(testLogger(), fakeRepo, vipCatalog())

	_, err := purchaseSvc.Buy(context.Background(), "111111111111111111", 555000111)
	assert.ErrorIs(t, err, service.ErrInsufficientFunds)
	assert.Equal(t, 50, fakeRepo.balance("111111111111111111"), "A rejected purchase must not touch the balance")
}

func TestPurchaseService_ItemNotFound(t *testing.T) {
	fakeRepo := newFakeLedgerRepo()
	fakeRepo.accounts["111111111111111111"] = &models.UserAccount{UserID: "111111111111111111", Balance: 100}
	purchaseSvc := service.NewPurchaseService(testLogger(), fakeRepo, vipCatalog())

	_, err := purchaseSvc.Buy(context.Background(), "111111111111111111", 999999999)
	assert.ErrorIs(t, err, service.ErrItemNotFound)
}

// Регрессионный тест на потерянное обновление: два одновременных клика по
// покупке за 60 монет при балансе 100 не могут пройти оба.
func TestPurchaseService_ConcurrentPurchases(t *testing.T) {
	fakeRepo := newFakeLedgerRepo()
	fakeRepo.accounts["111111111111111111"] = &models.UserAccount{UserID: "111111111111111111", Balance: 100}
	purchaseSvc := service.NewPurchaseService(testLogger(), fakeRepo, vipCatalog())

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := purchaseSvc.Buy(context.Background(), "111111111111111111", 555000111)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded int
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, service.ErrInsufficientFunds)
		}
	}
	assert.Equal(t, 1, succeeded, "Only one of two concurrent purchases may succeed")
	assert.Equal(t, 40, fakeRepo.balance("111111111111111111"))
	assert.GreaterOrEqual(t, fakeRepo.balance("111111111111111111"), 0, "Balance must never go negative")
}
