package main

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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"marketplace/internal/cache"
	"marketplace/internal/config"
	"marketplace/internal/db"
	"marketplace/internal/events"
	"marketplace/internal/httpserver"
	"marketplace/internal/logging"
	"marketplace/internal/repo"
	"marketplace/internal/search"
	"marketplace/internal/service"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	gormDB, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	gormRepo := &repo.GormRepo{DB: gormDB}

	var searcher search.ProductSearcher = &search.GormSearcher{DB: gormDB}
	catalogSvc := &service.CatalogService{
		Repo:     gormRepo,
		Searcher: searcher,
		Producer: producer,
		ESIndex:  cfg.ESIndex,
	}

	if cfg.SearchBackend == "elasticsearch" {
		esClient, err := search.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		catalogSvc.ES = esClient
		catalogSvc.Searcher = &search.ESSearcher{ES: esClient, Index: cfg.ESIndex}
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis init error: %v", err)
		}
		catalogSvc.Cache = cache.NewRedisCache(rdb)
	}

	authSvc := &service.AuthService{Repo: gormRepo, JWTSecret: cfg.JWTSecret, Producer: producer}
	adminSvc := &service.AdminService{Repo: gormRepo, Catalog: catalogSvc}

	seedCtx, cancelSeed := context.WithTimeout(logging.IntoContext(ctx, logger), 10*time.Second)
	if err := authSvc.SeedAdmin(seedCtx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		cancelSeed()
		log.Fatalf("admin seed error: %v", err)
	}
	cancelSeed()

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(httpserver.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		ProductHandler: &httpserver.ProductHTTP{Svc: catalogSvc},
		AdminHandler:   &httpserver.AdminHTTP{Svc: adminSvc},
		JWTSecret:      cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()
	logger.Info("server started", "port", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	logger.Info("shutdown complete")
}
