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

	itemscfg "github.com/feirinha/feirinha/services/items/internal/config"
	"github.com/feirinha/feirinha/services/items/internal/httpserver"
	"github.com/feirinha/feirinha/services/items/internal/models"
	"github.com/feirinha/feirinha/services/items/internal/repo"
	"github.com/feirinha/feirinha/services/items/internal/service"
)

func main() {
	if err := godotenv.Load("services/items/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := itemscfg.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(&models.Produto{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	itemsRepo := &repo.GormRepo{DB: db}
	svc := &service.ItemsService{Repo: itemsRepo, Producer: producer}
	handler := &httpserver.ItemsHTTP{Svc: svc}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{ItemsHandler: handler})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("items listening on %s", srv.Addr)
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

	log.Println("items stopped")
}
