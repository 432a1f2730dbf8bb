package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/chat-tree-service/internal/branch"
	"github.com/s21platform/chat-tree-service/internal/client/responder"
	"github.com/s21platform/chat-tree-service/internal/config"
	"github.com/s21platform/chat-tree-service/internal/databus/moderation"
	"github.com/s21platform/chat-tree-service/internal/facts"
	"github.com/s21platform/chat-tree-service/internal/pkg/tx"
	"github.com/s21platform/chat-tree-service/internal/repository/postgres"
	"github.com/s21platform/chat-tree-service/internal/repository/redis"
	"github.com/s21platform/chat-tree-service/internal/service"
)

const moderationConsumerGroupID = "chat-tree-moderation"

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := postgres.New(cfg)
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = context.WithValue(ctx, config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)
	ctx = tx.WithTxRepo(ctx, dbRepo)

	consumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.ModerationTopic,
		moderationConsumerGroupID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
		return
	}

	batchService := service.New(dbRepo, branch.New(dbRepo), facts.New(dbRepo), treeCache, responderClient, cfg)
	moderationHandler := moderation.New(batchService)
	consumer.RegisterHandler(ctx, moderationHandler.Handler)

	<-ctx.Done()
}
