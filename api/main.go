package main

//go:generate swag init -g api/main.go -d ../ -o ../docs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/pharmalink/internal/auth"
	"github.com/rogerio-castellano/pharmalink/internal/cart"
	"github.com/rogerio-castellano/pharmalink/internal/config"
	"github.com/rogerio-castellano/pharmalink/internal/db"
	"github.com/rogerio-castellano/pharmalink/internal/events"
	"github.com/rogerio-castellano/pharmalink/internal/http/handlers"
	mw "github.com/rogerio-castellano/pharmalink/internal/http/middleware"
	rl "github.com/rogerio-castellano/pharmalink/internal/http/rate_limiter"
	"github.com/rogerio-castellano/pharmalink/internal/http/router"
	"github.com/rogerio-castellano/pharmalink/internal/ledger"
	"github.com/rogerio-castellano/pharmalink/internal/notify"
	"github.com/rogerio-castellano/pharmalink/internal/observability"
	"github.com/rogerio-castellano/pharmalink/internal/redissvc"
	"github.com/rogerio-castellano/pharmalink/internal/repo"
	"go.uber.org/zap"
)

// @title PharmaLink API
// @version 1.0
// @description REST API for the pharmacy inventory ledger: stock, deliveries, sales and profit.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracingSDK(ctx, cfg)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		err = errors.Join(err, shutdownTracing(context.Background()))
	}()

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set, using the development signing key")
	}
	auth.SetSecret(cfg.JWTSecret)

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.SeedCatalog {
		seeded, err := db.Seed(ctx, store)
		if err != nil {
			return err
		}
		if seeded {
			logger.Info("Starter catalog seeded")
		}
	}

	publisher := events.Publisher(events.Noop{})
	if cfg.KafkaBroker != "" {
		publisher = events.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic, logger.Named("events"))
		logger.Info("Publishing ledger events", zap.String("broker", cfg.KafkaBroker), zap.String("topic", cfg.KafkaTopic))
	}
	defer func() {
		err = errors.Join(err, publisher.Close())
	}()

	var (
		carts   cart.Store   = cart.NewMemoryStore()
		claimer cart.Claimer = cart.NewMemoryClaimer(24 * time.Hour)
	)
	if cfg.RedisAddr != "" {
		rdb, err := redissvc.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			return fmt.Errorf("could not connect to Redis: %w", err)
		}
		defer rdb.Close()
		redisService := redissvc.NewRedisService(rdb)
		carts, claimer = redisService, redisService
		logger.Info("Carts stored in Redis", zap.String("addr", cfg.RedisAddr))
	}

	directory, err := auth.NewDirectory(auth.DefaultCredentials)
	if err != nil {
		return err
	}

	core := ledger.New(store,
		ledger.WithLogger(logger),
		ledger.WithPublisher(publisher),
		ledger.WithOpTimeout(cfg.LedgerOpTimeout),
	)

	handlers.SetLogger(logger)
	handlers.SetLedger(core)
	handlers.SetDirectory(directory)
	handlers.SetCartStore(carts)
	handlers.SetClaimer(claimer)
	handlers.SetNotifier(notify.New(notify.SMTPConfig{
		Server:       cfg.SMTPServer,
		Port:         cfg.SMTPPort,
		User:         cfg.SMTPUser,
		Password:     cfg.SMTPPassword,
		From:         cfg.AlertFrom,
		AuthDisabled: cfg.SMTPAuthDisabled,
	}, logger.Named("notify")))
	mw.SetLogger(logger)

	go rl.StartVisitorCleanupLoop(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("addr", cfg.HTTPAddr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		stop()
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore connects the configured backend and brings its schema up to date.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repo.LedgerStore, func(), error) {
	if cfg.DBDriver == "memory" {
		logger.Warn("Using the in-memory ledger, data is lost on restart")
		return repo.NewInMemoryLedgerStore(), func() {}, nil
	}

	dsn := cfg.DatabaseURL
	if cfg.DBDriver == db.DriverSQLite {
		dsn = cfg.SQLitePath
	}

	database, err := db.Connect(ctx, cfg.DBDriver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	closeDB := func() {
		if err := database.Close(); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}

	if err := db.Migrate(ctx, database); err != nil {
		closeDB()
		return nil, nil, err
	}
	version, err := db.SchemaVersion(ctx, database)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	logger.Info("Database ready", zap.String("driver", cfg.DBDriver), zap.Int("schema_version", version))

	store, err := repo.NewSQLLedgerStore(database)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return store, closeDB, nil
}
