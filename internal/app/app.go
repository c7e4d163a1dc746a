// Package app initializes and runs the session manager service: it opens
// the database, runs migrations, wires the session core to the MTProto
// dialer and correction oracle, and serves the gRPC control surface with
// graceful shutdown.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/tgpolish/internal/config"
	"github.com/dmitrijs2005/tgpolish/internal/correction"
	gs "github.com/dmitrijs2005/tgpolish/internal/grpc"
	"github.com/dmitrijs2005/tgpolish/internal/logging"
	"github.com/dmitrijs2005/tgpolish/internal/oracle"
	"github.com/dmitrijs2005/tgpolish/internal/repositories/repomanager"
	"github.com/dmitrijs2005/tgpolish/internal/services"
	"github.com/dmitrijs2005/tgpolish/internal/session"
	"github.com/dmitrijs2005/tgpolish/internal/telegram/gotd"
	"github.com/dmitrijs2005/tgpolish/internal/vault"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	manager  *session.Manager
	registry *session.Registry
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// a service without a vault secret would mint unrecoverable credentials
	if cfg.VaultSecret == "" {
		return nil, fmt.Errorf("vault secret is not configured")
	}
	v, err := vault.New(cfg.VaultSecret)
	if err != nil {
		return nil, fmt.Errorf("vault init error: %w", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	storage := services.NewStorageService(db, rm)
	dialer := gotd.NewDialer(cfg.TelegramAppID, cfg.TelegramAppHash, logger)

	o := oracle.NewGeminiOracle(cfg.OracleEndpoint, cfg.OracleAPIKey, cfg.OracleModel, nil)
	gate := correction.NewGate(storage, o, cfg.OracleTimeout, logger)

	authenticator := session.NewAuthenticator(dialer, v, storage, logger)
	registry := session.NewRegistry(dialer, gate, logger)
	manager := session.NewManager(authenticator, registry, v, storage, storage, storage, logger)

	return &App{
		config:   cfg,
		logger:   logger,
		db:       db,
		manager:  manager,
		registry: registry,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.manager, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	// tear down every live userbot before releasing the database
	app.registry.StopAll(context.Background())

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	app.logger.Info(ctx, "App stopped")
}
