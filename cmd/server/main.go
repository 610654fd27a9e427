package main

import (
	"context"

	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/pattidev/discordshoppingbot/internal/app"
	"github.com/pattidev/discordshoppingbot/internal/app/handlers"
	"github.com/pattidev/discordshoppingbot/internal/config"
	"github.com/pattidev/discordshoppingbot/internal/lib/logger"
	"github.com/pattidev/discordshoppingbot/internal/lib/logger/handlers/urllog"
	"github.com/pattidev/discordshoppingbot/internal/service"
	"github.com/pattidev/discordshoppingbot/internal/storage"
	"github.com/pkg/errors"
)

func main() {
	// секреты по месту разработки лежат в .env; в проде файла нет, это не ошибка
	_ = godotenv.Load()

	// загрузка конфигурации
	cfg := config.MustLoad()

	// инициализация логгера, зависит от настройки окружения
	log := logger.SetupLogger(cfg.Env)
	log.Info("starting app", slog.String("env", cfg.Env))

	// загружаем объект приложения: конфиг и подключение к Google Sheets
	application, err := app.NewApp(context.Background(), log, cfg)
	if err != nil {
		log.Error("failed to initialize app", slog.Any("error", err))
		panic(errors.Wrap(err, "failed to initialize app"))
	}

	publicKey, err := cfg.Discord.Ed25519PublicKey()
	if err != nil {
		log.Error("failed to decode public key", slog.Any("error", err))
		panic(errors.Wrap(err, "failed to decode public key"))
	}

	router := chi.NewRouter()
	// настройка middleware
	router.Use(middleware.RequestID)
	router.Use(urllog.CustomLoggerMiddleware(log))
	router.Use(middleware.Recoverer)

	// реализация слоев по работе с таблицей
	values := storage.NewSheetValues(application.Sheets, cfg.Sheets.SpreadsheetID)
	ledgerRepo := storage.NewLedgerRepository(values, cfg.Sheets.CurrencySheet)
	itemRepo := storage.NewItemRepository(values, cfg.Sheets.ItemsSheet)

	balanceService := service.NewBalanceService(application.Logger, ledgerRepo)
	shopService := service.NewShopService(application.Logger, itemRepo)
	purchaseService := service.NewPurchaseService(application.Logger, ledgerRepo, itemRepo)

	// единственный эндпоинт — вебхук интеракций Discord
	router.Post("/interactions", handlers.InteractionsHandler(application.Logger, publicKey, balanceService, shopService, purchaseService))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.Any("error", err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	stopSign := <-stop
	log.Info("received shutdown signal", slog.String("signal", stopSign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", slog.Any("error", err))
	}
	log.Info("server gracefully stopped")
}
