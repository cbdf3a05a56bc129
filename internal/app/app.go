package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	corebootstrap "github.com/jarviz/jarvizbot/core/bootstrap"
	coretelegram "github.com/jarviz/jarvizbot/core/telegram"
	"github.com/jarviz/jarvizbot/core/telegram/router"
	"github.com/jarviz/jarvizbot/core/telegram/state"
	"github.com/jarviz/jarvizbot/internal/bot"
	"github.com/jarviz/jarvizbot/internal/service"
	"github.com/jarviz/jarvizbot/internal/storage"
)

// Services groups the domain services built on a connected database.
type Services struct {
	Transactions *service.Transactions
	Reports      *service.Reports
	Export       *service.Export
}

var serviceProvider = corebootstrap.TypedServiceProviderFunc[*Services](
	func(ctx context.Context, cfg interface{}, store corebootstrap.Storage) (*Services, error) {
		db, ok := store.(*sqlx.DB)
		if !ok {
			return nil, fmt.Errorf("app: unexpected storage type %T", store)
		}
		repo := storage.NewPostgres(db)
		return &Services{
			Transactions: service.NewTransactions(repo, validator.New()),
			Reports:      service.NewReports(repo),
			Export:       service.NewExport(repo),
		}, nil
	},
)

// App holds everything needed to run the bot after bootstrap.
type App struct {
	cfg      *Config
	db       *sqlx.DB
	services *Services
	fsm      state.Manager
}

// Bootstrap initializes logging, database, migrations, and services.
func Bootstrap(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config")
	}

	result, err := corebootstrap.Run(corebootstrap.Options{
		Config:   &cfg.Config,
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	services, err := serviceProvider.ProvideTyped(context.Background(), cfg, result.DB)
	if err != nil {
		_ = result.DB.Close()
		return nil, err
	}

	return &App{
		cfg:      cfg,
		db:       result.DB,
		services: services,
		fsm:      state.NewMemoryManager(),
	}, nil
}

// TelegramRunOptions assembles the bot runtime: registry, middleware chain,
// and routes for commands, conversation text, and callbacks.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	handlers := bot.NewHandlers(a.services.Transactions, a.services.Reports, a.services.Export, a.fsm)
	handlers.Register(reg)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes, router.TextRoutes(a.fsm, reg, router.TextOptions{})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))

	opts := coretelegram.RunOptions{
		Config:      &a.cfg.Config,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(&a.cfg.Config, nil),
		Routes:      routes,
		OnStop: func(ctx context.Context, rt coretelegram.Runtime) error {
			return a.db.Close()
		},
	}
	return opts, nil
}
