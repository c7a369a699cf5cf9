package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/goglobe/config"
	"github.com/Domenick1991/goglobe/internal/email"
	"github.com/Domenick1991/goglobe/internal/kafka"
	"github.com/Domenick1991/goglobe/internal/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnvFiles(".env")

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logger.SetupLogger(cfg.Log.Level)
	log := logrus.StandardLogger()

	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.NotificationsTopic == "" {
		log.Fatal("kafka.brokers and kafka.notifications_topic must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(log)

	log.WithField("topic", cfg.Kafka.NotificationsTopic).Info("notification worker started")
	if err := consumer.Consume(ctx, kafka.BookingEventHandler(sender.Send)); err != nil {
		log.Fatalf("consumer stopped: %v", err)
	}
	log.Info("notification worker stopped")
}
