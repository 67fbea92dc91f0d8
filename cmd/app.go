/*
Package cmd - application assembly.

Wiring order: config, logger, store (MySQL or in-memory per configuration),
repositories, application services, controllers, router, HTTP server. The
loading-strategy tuning (batch size) flows from configuration into the order
repository here and nowhere else.
*/
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shop/api"
	"shop/api/health"
	apiitem "shop/api/item"
	apimember "shop/api/member"
	apiorder "shop/api/order"
	itemapp "shop/application/item"
	memberapp "shop/application/member"
	orderapp "shop/application/order"
	"shop/config"
	itemdomain "shop/domain/item"
	memberdomain "shop/domain/member"
	orderdomain "shop/domain/order"
	"shop/domain/shared"
	"shop/infrastructure/persistence/memory"
	"shop/infrastructure/persistence/mysql"
	"shop/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App - the assembled application.
type App struct {
	config *config.Config
	router *api.Router
	server *http.Server
	db     *gorm.DB
}

// NewApp builds the application from configuration.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
		zap.String("database", cfg.Database.Type))

	var (
		db           *gorm.DB
		memberRepo   memberdomain.Repository
		itemRepo     itemdomain.Repository
		orderRepo    orderdomain.Repository
		orderQueries orderdomain.QueryService
		uow          shared.UnitOfWork
	)

	switch cfg.Database.Type {
	case "mysql":
		db, err = mysql.Connect(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
		}

		// Schema migration is a development convenience only.
		if cfg.IsDevelopment() {
			if err := mysql.Migrate(db); err != nil {
				return nil, fmt.Errorf("failed to migrate schema: %w", err)
			}
		}

		memberRepo = mysql.NewMemberRepository(db)
		itemRepo = mysql.NewItemRepository(db)
		orderRepo = mysql.NewOrderRepository(db, cfg.Query.EffectiveBatchSize())
		orderQueries = mysql.NewOrderQueryRepository(db)
		uow = mysql.NewUnitOfWork(db)

	default:
		logger.Info("Using in-memory persistence layer")
		store := memory.NewStore()
		memberRepo = memory.NewMemberRepository(store)
		itemRepo = memory.NewItemRepository(store)
		orderRepo = memory.NewOrderRepository(store)
		orderQueries = memory.NewOrderQueryRepository(store)
		uow = memory.NewUnitOfWork()
	}

	memberService := memberapp.NewApplicationService(memberRepo)
	itemService := itemapp.NewApplicationService(itemRepo)
	orderService := orderapp.NewApplicationService(orderRepo, memberRepo, itemRepo, orderQueries, uow)

	var sqlDB *sql.DB
	if db != nil {
		sqlDB, _ = db.DB()
	}

	router := api.NewRouter(
		cfg,
		health.NewController(cfg, sqlDB),
		apimember.NewController(memberService),
		apiitem.NewController(itemService),
		apiorder.NewController(orderService),
	)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{
		config: cfg,
		router: router,
		server: server,
		db:     db,
	}, nil
}

// Run starts the HTTP server and blocks until shutdown completes.
func (a *App) Run() error {
	go func() {
		logger.Info("Server starting", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	return a.Shutdown()
}

// Shutdown drains in-flight requests and closes resources.
func (a *App) Shutdown() error {
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Error("Failed to close database", zap.Error(err))
			}
		}
	}

	logger.Info("Server stopped")
	_ = logger.Sync()
	return nil
}

// GetEngine exposes the gin engine for tests.
func (a *App) GetEngine() *gin.Engine {
	return a.router.GetEngine()
}
