// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "nilebank/internal/api"
	"nilebank/internal/api/handler"
	"nilebank/internal/audit"
	"nilebank/internal/auth"
	"nilebank/internal/config"
	"nilebank/internal/repository"
	"nilebank/internal/repository/sqlite"
	"nilebank/internal/service"
	"nilebank/internal/util"
	"nilebank/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository        repository.UserRepository
	AccountRepository     repository.AccountRepository
	TransactionRepository repository.TransactionRepository

	// Services
	Directory service.DirectoryService
	Ledger    service.LedgerService

	// Supporting components
	Trail  *audit.Trail
	Tokens *auth.TokenManager

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	database, err := db.Open(app.Config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database opened.", "path", app.Config.DBPath)

	app.UserRepository = sqlite.NewUserRepository()
	app.AccountRepository = sqlite.NewAccountRepository()
	app.TransactionRepository = sqlite.NewTransactionRepository()
	app.Logger.Info("Repositories initialized.")

	app.Trail = audit.NewTrail(app.Config.AuditLogPath)
	app.Tokens = auth.NewTokenManager(app.Config.JWTSecret, app.Config.JWTTTL)

	app.Directory = service.NewDirectoryService(
		app.DB,
		app.UserRepository,
		app.AccountRepository,
		auth.NewBcryptHasher(),
		app.Trail,
	)
	app.Ledger = service.NewLedgerService(
		app.DB,
		app.AccountRepository,
		app.TransactionRepository,
	)
	app.Logger.Info("Services initialized.")

	authHandler := handler.NewAuthHandler(app.Directory, app.Tokens, app.Logger)
	ledgerHandler := handler.NewLedgerHandler(app.Ledger, app.Logger)
	adminHandler := handler.NewAdminHandler(app.Directory, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, ledgerHandler, adminHandler, app.Tokens, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database", "error", err)
			return fmt.Errorf("failed to close database: %w", err)
		}
		app.Logger.Info("Database closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
