// Command httpd runs the triage HTTP API: complaint intake, classification,
// authenticity screening and the public scorecard.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/civicwatch/triage/internal/api"
	"github.com/civicwatch/triage/internal/authenticity"
	"github.com/civicwatch/triage/internal/classifier"
	"github.com/civicwatch/triage/internal/config"
	"github.com/civicwatch/triage/internal/database"
	"github.com/civicwatch/triage/internal/logger"
	"github.com/civicwatch/triage/internal/telemetry"
)

const migrateTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "httpd: %v\n", err)
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

	log.Info("starting triage httpd",
		logger.String("service", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port))

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

	handler := api.NewHandler(engine, detector, complaints, tp, log, func(c *gin.Context) error {
		return db.PingContext(c.Request.Context())
	})

	server := api.NewServer(api.ServerConfig{
		ServiceName: cfg.Service.Name,
		Port:        cfg.Service.Port,
		Debug:       cfg.Service.Debug,
	}, log, func(router *gin.Engine) {
		api.SetupRoutes(router, handler, tp)
	})

	return server.RunWithGracefulShutdown(context.Background())
}
