package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	grpcHandler "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"
	"catalog_service/pkg/db"
	"catalog_service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

func main() {
	logger := setupLogger("info", "text")

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger = setupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Info("Starting Catalog Service...")

	// --- Database Connection ---
	sqlDB, err := db.Connect(context.Background(), cfg.DatabaseURL, db.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(sqlDB, logger)
	logger.Info("Database connection established.")

	gormDB, err := db.OpenGorm(sqlDB, logger)
	if err != nil {
		logger.Fatalf("Failed to initialise ORM: %v", err)
	}
	if cfg.AutoMigrate {
		if err := repository.Migrate(gormDB); err != nil {
			logger.Fatalf("Failed to migrate schema: %v", err)
		}
		logger.Info("Schema migrated.")
	}
	if cfg.SeedData {
		if err := repository.Seed(context.Background(), gormDB, logger); err != nil {
			logger.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	// --- Dependency Injection ---
	categoryRepo := repository.NewCategoryRepository(gormDB, logger)
	productRepo := repository.NewProductRepository(gormDB, logger)
	transactor := repository.NewTransactor(gormDB)
	logger.Info("Repositories initialized.")

	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, transactor, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, transactor, logger)
	logger.Info("Use cases initialized.")

	m := metrics.New("catalog")

	gin.SetMode(cfg.GinMode)
	router := delivery.NewRouter(delivery.RouterConfig{
		Categories: delivery.NewCategoryHandler(categoryUseCase, logger),
		Products:   delivery.NewProductHandler(productUseCase, logger),
		Metrics:    m,
		DB:         sqlDB,
		Logger:     logger,
	})
	httpServer := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: delivery.WithCORS(router, cfg.CORSAllowedOrigins),
	}

	grpcServer := grpcHandler.NewServer(grpcHandler.NewCatalogHandler(categoryUseCase, productUseCase, logger), logger, m)

	// --- Start Servers ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lis, err := net.Listen("tcp", cfg.GrpcPort)
		if err != nil {
			return err
		}
		logger.Infof("gRPC server listening on %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Infof("HTTP server listening on %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Warn("Shutdown signal received...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("HTTP server shutdown error: %v", err)
		}
		grpcServer.GracefulStop()
		logger.Info("Servers gracefully stopped.")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("Server exited with error: %v", err)
		closeDB(sqlDB, logger)
		os.Exit(1)
	}
	logger.Info("Catalog Service shut down gracefully.")
}

func setupLogger(level, format string) *logrus.Logger {
	logger := logrus.New()
	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	logger.SetOutput(os.Stdout)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

func closeDB(sqlDB *sql.DB, logger *logrus.Logger) {
	if err := sqlDB.Close(); err != nil {
		logger.Errorf("Error closing database connection: %v", err)
		return
	}
	logger.Info("Database connection closed.")
}
