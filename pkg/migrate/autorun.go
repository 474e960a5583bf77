package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/fireshop-backend/pkg/config"
	"github.com/angelmondragon/fireshop-backend/pkg/db"
	"github.com/angelmondragon/fireshop-backend/pkg/db/models"
	"github.com/angelmondragon/fireshop-backend/pkg/logger"
)

// MaybeRunDev brings the schema up and optionally seeds the catalog reference
// tables when the app runs in dev mode with the feature flags enabled.
// Production schema changes are managed outside the process.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	if cfg.FeatureFlags.UseSQLite {
		// The SQL migrations use Postgres types (bigint[], uuid defaults);
		// the throwaway sqlite path derives its schema from the models.
		logg.Info(logg.WithField(ctx, "env", cfg.App.Env), "auto-migrating sqlite schema (dev)")
		if err := client.DB().WithContext(ctx).AutoMigrate(
			&models.Brand{},
			&models.Category{},
			&models.Color{},
			&models.Effect{},
			&models.Product{},
			&models.User{},
		); err != nil {
			return fmt.Errorf("auto-migrating sqlite schema: %w", err)
		}
	} else {
		sqlDB, err := client.DB().DB()
		if err != nil {
			return fmt.Errorf("extracting sql.DB: %w", err)
		}

		runCtx := logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": DefaultDir})
		logg.Info(runCtx, "running Goose migrations (dev auto-run)")

		if err := Run(runCtx, sqlDB, DefaultDir, "up"); err != nil {
			return fmt.Errorf("running goose up: %w", err)
		}

		logg.Info(runCtx, "Goose migrations completed")
	}

	if cfg.FeatureFlags.SeedCatalog {
		if err := SeedCatalog(ctx, client); err != nil {
			return fmt.Errorf("seeding catalog: %w", err)
		}
		logg.Info(ctx, "catalog reference tables seeded")
	}

	return nil
}
