package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MGhiremath0281/Apex-Money/internal"
	"github.com/MGhiremath0281/Apex-Money/internal/auth"
	authPostgres "github.com/MGhiremath0281/Apex-Money/internal/auth/postgres"
	"github.com/MGhiremath0281/Apex-Money/internal/budget"
	budgetPostgres "github.com/MGhiremath0281/Apex-Money/internal/budget/postgres"
	"github.com/MGhiremath0281/Apex-Money/internal/category"
	categoryPostgres "github.com/MGhiremath0281/Apex-Money/internal/category/postgres"
	"github.com/MGhiremath0281/Apex-Money/internal/core/events"
	"github.com/MGhiremath0281/Apex-Money/internal/reports"
	reportsPostgres "github.com/MGhiremath0281/Apex-Money/internal/reports/postgres"
	"github.com/MGhiremath0281/Apex-Money/internal/transaction"
	transactionPostgres "github.com/MGhiremath0281/Apex-Money/internal/transaction/postgres"
	"github.com/MGhiremath0281/Apex-Money/internal/transport/rest"
	"github.com/MGhiremath0281/Apex-Money/internal/user"
	userPostgres "github.com/MGhiremath0281/Apex-Money/internal/user/postgres"
	"github.com/MGhiremath0281/Apex-Money/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Gorm   *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	eventBus := events.NewEventBus(deps.Logger)

	tokenGen := auth.NewJWTTokenGenerator(
		deps.Config.Security.AccessTokenSecret,
		deps.Config.Security.RefreshTokenSecret,
		deps.Config.Security.AccessTokenTTL,
		deps.Config.Security.RefreshTokenTTL,
	)

	authRepo := authPostgres.NewRepository(deps.Gorm)
	userRepo := userPostgres.NewRepository(deps.Gorm)
	categoryRepo := categoryPostgres.NewCategoryRepository(deps.Gorm)
	transactionRepo := transactionPostgres.NewTransactionRepository(deps.Gorm)
	budgetRepo := budgetPostgres.NewBudgetRepository(deps.Gorm)
	reportStore := reportsPostgres.NewReportStore(deps.Gorm)

	aggregator := reports.NewAggregator(reportStore)

	authService := auth.NewService(authRepo, tokenGen, deps.Config.Security.BCryptCost)
	userService := user.NewService(userRepo)
	categoryService := category.NewService(categoryRepo, eventBus, deps.Logger)
	transactionService := transaction.NewService(transactionRepo, categoryRepo, deps.Logger)
	budgetService := budget.NewService(budgetRepo, categoryRepo, aggregator, deps.Logger)
	budgetService.RegisterEventHandlers(eventBus)
	reportService := reports.NewService(reportStore, deps.Logger)

	handlers := rest.Handlers{
		Auth:        auth.NewHandler(authService),
		User:        user.NewHandler(userService),
		Category:    category.NewHandler(categoryService),
		Transaction: transaction.NewHandler(transactionService),
		Budget:      budget.NewHandler(budgetService),
		Reports:     reports.NewHandler(reportService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Level, config.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		Conn: db.DB,
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		Gorm:   gormDB,
		Router: chi.NewRouter(),
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
