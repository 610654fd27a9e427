package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pattidev/discordshoppingbot/internal/config"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger
	Sheets *sheets.Service
}

// NewApp создаёт новый экземпляр App
func NewApp(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {

	// подключение к Google Sheets через JSON сервисного аккаунта
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(cfg.Sheets.Credentials)),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	app := &App{
		Config: cfg,
		Logger: log,
		Sheets: svc,
	}

	return app, nil
}
