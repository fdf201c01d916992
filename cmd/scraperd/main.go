// Command scraperd runs the social-feed scraper: it polls the platform feed,
// screens and classifies each post, and stores accepted ones as complaints.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/civicwatch/triage/internal/authenticity"
	"github.com/civicwatch/triage/internal/classifier"
	"github.com/civicwatch/triage/internal/config"
	"github.com/civicwatch/triage/internal/database"
	"github.com/civicwatch/triage/internal/logger"
	"github.com/civicwatch/triage/internal/scraper"
	"github.com/civicwatch/triage/internal/telemetry"
)

const migrateTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "scraperd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.GetConfigPath("config.yml"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting triage scraperd",
		logger.String("service", cfg.Service.Name),
		logger.Duration("poll_interval", cfg.Scraper.PollInterval),
		logger.Int("batch_size", cfg.Scraper.BatchSize))

	db, err := database.Open(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxConnections,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	migrateCtx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()
	if err := database.Migrate(migrateCtx, db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	tp := telemetry.NewProvider()
	engine := classifier.NewEngine(log, tp)
	detector := authenticity.NewDetector(log, tp)
	complaints := database.NewComplaintsRepository(db)
	limiter := scraper.NewRateLimiter(cfg.Scraper.RateLimit, cfg.Scraper.Burst, log)

	poller := scraper.NewPoller(
		scraper.NewDemoFeed(),
		engine,
		detector,
		complaints,
		limiter,
		tp,
		log,
		scraper.Config{
			BatchSize:    cfg.Scraper.BatchSize,
			PollInterval: cfg.Scraper.PollInterval,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := poller.Start(ctx); err != nil {
		return fmt.Errorf("start poller: %w", err)
	}

	<-ctx.Done()
	poller.Stop()
	log.Info("scraperd stopped")
	return nil
}
