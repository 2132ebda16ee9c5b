package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iliyamo/cinema-console/internal/config"
	"github.com/iliyamo/cinema-console/internal/queue"
	"github.com/iliyamo/cinema-console/internal/utils"
)

// ticket-log consumes ticket.reserved events from RabbitMQ and appends
// them to the ticket log file until interrupted.
func main() {
	cfg, err := config.LoadConsumer("")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := utils.InitLogger(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("ticket consumer starting", "queue", cfg.Events.Queue, "log_path", cfg.Events.LogPath)
	err = queue.StartTicketConsumer(ctx, cfg.Events.AMQPURL, cfg.Events.Queue, cfg.Events.LogPath)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("ticket consumer: %v", err)
	}
	logger.Info("ticket consumer stopped")
}
