package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/chat-tree-service/internal/branch"
	"github.com/s21platform/chat-tree-service/internal/client/responder"
	"github.com/s21platform/chat-tree-service/internal/config"
	"github.com/s21platform/chat-tree-service/internal/facts"
	"github.com/s21platform/chat-tree-service/internal/infra"
	"github.com/s21platform/chat-tree-service/internal/pkg/tx"
	"github.com/s21platform/chat-tree-service/internal/pkg/validator"
	db "github.com/s21platform/chat-tree-service/internal/repository/postgres"
	"github.com/s21platform/chat-tree-service/internal/repository/redis"
	"github.com/s21platform/chat-tree-service/internal/rest"
	"github.com/s21platform/chat-tree-service/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	treeCache, err := redis.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer func() { _ = treeCache.Close() }()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		log.Fatalf("failed to connect graphite: %v", err)
	}
	defer metrics.Disconnect()

	responderClient := responder.New(cfg)
	defer responderClient.Close()

	loader := branch.New(dbRepo)
	collector := facts.New(dbRepo)
	batchService := service.New(dbRepo, loader, collector, treeCache, responderClient, cfg)

	handler := rest.New(batchService, collector, validator.New())
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.MetricsHTTP(next, metrics)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	handler.Register(router)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
