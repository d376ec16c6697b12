package app

import (
	"context"
	"fmt"
	"go-emprec/internal/config"
	"go-emprec/internal/messaging/kafka"
	"go-emprec/internal/messaging/kafka/producer"
	"go-emprec/internal/shared/connection"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// RunWorker relays outbox events to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.Database.MaxRetries, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.OutboxPollInterval,
		cfg.OutboxBatchSize,
	)

	log.Info("worker shut down")
	return nil
}
