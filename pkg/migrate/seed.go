package migrate

import (
	"context"

	"gorm.io/gorm"

	"github.com/angelmondragon/fireshop-backend/pkg/db"
	"github.com/angelmondragon/fireshop-backend/pkg/db/models"
)

var (
	seedBrands     = []string{"Black Cat", "Winda", "Vulcan", "Brothers"}
	seedCategories = []string{"Cakes", "Rockets", "Fountains", "Firecrackers", "Roman Candles"}
	seedColors     = []string{"Red", "Green", "Blue", "Gold", "Silver", "Purple"}
	seedEffects    = []string{"Crackle", "Strobe", "Willow", "Brocade", "Whistle", "Peony"}
)

// SeedCatalog inserts the baseline reference rows products connect to by name.
// Inserts are idempotent and run in one transaction; existing names are left
// untouched.
func SeedCatalog(ctx context.Context, client *db.Client) error {
	return client.WithTx(ctx, func(tx *gorm.DB) error {
		for _, name := range seedBrands {
			if err := tx.Where(models.Brand{Name: name}).FirstOrCreate(&models.Brand{Name: name}).Error; err != nil {
				return err
			}
		}
		for _, name := range seedCategories {
			if err := tx.Where(models.Category{Name: name}).FirstOrCreate(&models.Category{Name: name}).Error; err != nil {
				return err
			}
		}
		for _, name := range seedColors {
			if err := tx.Where(models.Color{Name: name}).FirstOrCreate(&models.Color{Name: name}).Error; err != nil {
				return err
			}
		}
		for _, name := range seedEffects {
			if err := tx.Where(models.Effect{Name: name}).FirstOrCreate(&models.Effect{Name: name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
