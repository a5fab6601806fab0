package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/fortes-labs/storefront/internal/config"
	"github.com/fortes-labs/storefront/internal/es"
	"github.com/fortes-labs/storefront/internal/httpserver"
	"github.com/fortes-labs/storefront/internal/logging"
	loggingmw "github.com/fortes-labs/storefront/internal/middleware/logging"
	"github.com/fortes-labs/storefront/internal/models"
	"github.com/fortes-labs/storefront/internal/mykafka"
	"github.com/fortes-labs/storefront/internal/repo"
	"github.com/fortes-labs/storefront/internal/seed"
	"github.com/fortes-labs/storefront/internal/service"
	pkgdb "github.com/fortes-labs/storefront/pkg/db"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
		&models.PaymentMethod{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	if cfg.SeedCatalog {
		n, err := seed.Products(db)
		if err != nil {
			log.Fatalf("seed catalog: %v", err)
		}
		if n > 0 {
			logger.Info("catalog seeded", "products", n)
		}
	}

	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka producer: %v", err)
		}
	} else {
		logger.Warn("KAFKA_BROKERS not set, domain events disabled")
	}

	var esClient *elasticsearch.Client
	if cfg.ESURL != "" {
		esClient, err = es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
	} else {
		logger.Warn("ES_URL not set, product search disabled")
	}

	gormRepo := &repo.GormRepo{DB: db}
	deps := &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{
			Svc:      &service.ProductService{Repo: gormRepo},
			Producer: producer,
			ES:       esClient,
			ESIndex:  cfg.ESIndex,
		},
		CartHandler: &httpserver.CartHTTP{
			Svc:      &service.CartService{Repo: gormRepo},
			Producer: producer,
		},
		OrderHandler: &httpserver.OrderHTTP{
			Svc:      &service.OrderService{Repo: gormRepo},
			Producer: producer,
		},
		AccountHandler: &httpserver.AccountHTTP{
			Svc: &service.AccountService{Repo: gormRepo},
		},
		SearchHandler: &httpserver.SearchHTTP{ES: esClient, Index: cfg.ESIndex},
	}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("storefront listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
