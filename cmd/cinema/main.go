package main // Entry point package for the cinema console

import (
	"context"
	"fmt"
	"io"
	"log" // Logging library for fatal startup errors
	"os"
	"path/filepath"

	"github.com/iliyamo/cinema-console/internal/config"     // Internal config loader
	"github.com/iliyamo/cinema-console/internal/database"   // MySQL connection and schema
	"github.com/iliyamo/cinema-console/internal/queue"      // Ticket event publishers
	"github.com/iliyamo/cinema-console/internal/repository" // Data access objects
	"github.com/iliyamo/cinema-console/internal/shell"      // Interactive menu
	"github.com/iliyamo/cinema-console/internal/utils"      // Logger setup
)

func main() {
	cfg, err := config.Load("") // Load .env, config file and environment
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("cinema: %v", err)
	}
}

// run owns every resource so deferred closes happen before main exits.
func run(cfg config.Config) error {
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != config.LogToStderr {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return fmt.Errorf("log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := utils.InitLogger(cfg.LogLevel, logOut)

	ctx := context.Background()

	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()
	if cfg.AutoMigrate {
		if err := database.EnsureSchema(ctx, db); err != nil {
			return err
		}
	}
	logger.Info("database connected", "host", cfg.DBHost, "database", cfg.DBName, "env", cfg.Env)

	events, err := queue.NewPublisher(cfg.Events)
	if err != nil {
		// Events are optional; drop them rather than refuse to start.
		logger.Warn("event publisher unavailable, continuing without events", "backend", cfg.Events.Backend, "err", err)
		events = queue.NopPublisher{}
	}
	defer events.Close()

	sh := shell.New(shell.Deps{
		Films:       repository.NewFilmRepo(db),
		Seances:     repository.NewSeanceRepo(db),
		Spectateurs: repository.NewSpectateurRepo(db),
		Tickets:     repository.NewTicketRepo(db),
		Events:      events,
		Log:         logger,
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
	})
	if err := sh.Run(ctx); err != nil {
		logger.Error("shell stopped", "err", err)
		return err
	}
	return nil
}
