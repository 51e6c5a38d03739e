package cli

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	appconfig "github.com/bbuckner99/ai-sales-report-generator/internal/config"
	"github.com/bbuckner99/ai-sales-report-generator/internal/persistence"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/config"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/logger"
)

// MigrateCommand returns a command that applies pending database migrations
func MigrateCommand() *cli.Command {
	return &cli.Command{
		Name:   "migrate",
		Usage:  "Apply pending database migrations",
		Action: migrateAction,
	}
}

func migrateAction(ctx *cli.Context) error {
	log := getLogger(ctx)

	cfg := &appconfig.AppConfig{}
	if err := config.GetConfigFromEnvVars(cfg); err != nil {
		log.Error("Failed to load config", logger.ErrorField(err))
		return fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := pgxpool.New(ctx.Context, cfg.Database.URL)
	if err != nil {
		log.Error("Failed to connect to database", logger.ErrorField(err))
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	manager := persistence.NewMigrationManager(pool, log)
	defer func() {
		_ = manager.Close()
	}()

	if err := manager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
