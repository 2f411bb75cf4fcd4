package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	pkgdb "github.com/feirinha/feirinha/pkg/db"
	"github.com/feirinha/feirinha/pkg/events"
	"github.com/feirinha/feirinha/pkg/logging"
	loggingmw "github.com/feirinha/feirinha/pkg/middleware/logging"

	basketcfg "github.com/feirinha/feirinha/services/basket/internal/config"
	"github.com/feirinha/feirinha/services/basket/internal/httpserver"
	"github.com/feirinha/feirinha/services/basket/internal/models"
	"github.com/feirinha/feirinha/services/basket/internal/repo"
	"github.com/feirinha/feirinha/services/basket/internal/service"
	"github.com/feirinha/feirinha/services/basket/internal/valuation"
)

func main() {
	if err := godotenv.Load("services/basket/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := basketcfg.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(&models.Basket{}, &models.BasketItem{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	basketRepo := &repo.GormRepo{DB: db}
	valuator := &valuation.Valuator{Fetcher: valuation.NewClient(cfg.ItemsAPIURL)}
	aggregator := &valuation.Aggregator{Valuator: valuator}

	basketSvc := &service.BasketService{Repo: basketRepo, Aggregator: aggregator, Producer: producer}
	itemSvc := &service.ItemService{Repo: basketRepo, Valuator: valuator, Producer: producer}
	summarySvc := &service.SummaryService{Repo: basketRepo, Aggregator: aggregator}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		BasketHandler:  &httpserver.BasketHTTP{Svc: basketSvc},
		ItemHandler:    &httpserver.ItemHTTP{Svc: itemSvc},
		SummaryHandler: &httpserver.SummaryHTTP{Svc: summarySvc},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("basket listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("basket stopped")
}
