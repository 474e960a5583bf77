package product

import (
	"context"
	"fmt"

	"github.com/angelmondragon/fireshop-backend/pkg/db/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository wires together product persistence, resolving brand, category,
// color, and effect connections by their unique names.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) expanded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Preload("Colors").
		Preload("Effects")
}

// List returns products ordered by ascending id, bounded by limit.
// The offset the pagination params produce is deliberately not applied yet;
// the published behavior is limit-only.
// TODO: apply offset once the storefront pager sends page links through.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]models.Product, error) {
	var products []models.Product
	if err := r.expanded(ctx).
		Order("id ASC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID loads the product with all associations expanded.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.expanded(ctx).First(&product, "products.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct resolves the named connections and inserts the row.
// An unknown reference name surfaces as a lookup error before the insert.
func (r *Repository) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	brand, err := findByName[models.Brand](r.db.WithContext(ctx), input.Brand)
	if err != nil {
		return nil, fmt.Errorf("resolve brand %q: %w", input.Brand, err)
	}
	category, err := findByName[models.Category](r.db.WithContext(ctx), input.Category)
	if err != nil {
		return nil, fmt.Errorf("resolve category %q: %w", input.Category, err)
	}
	colors, err := r.resolveColors(ctx, input.Colors)
	if err != nil {
		return nil, err
	}
	effects, err := r.resolveEffects(ctx, input.Effects)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          input.ID,
		Title:       input.Title,
		InStock:     input.InStock,
		UnitPrice:   input.UnitPrice,
		CasePrice:   input.CasePrice,
		Package:     pq.Int64Array(input.Package),
		Description: input.Description,
		Image:       input.Image,
		VideoURL:    input.VideoURL,
		BrandID:     brand.ID,
		CategoryID:  category.ID,
		Colors:      colors,
		Effects:     effects,
	}

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies a partial update. Scalar fields with nil pointers are
// left untouched; supplied color/effect names are connected on top of the
// existing associations, never replacing them.
func (r *Repository) UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*models.Product, error) {
	updates := map[string]any{
		"in_stock":   input.InStock,
		"unit_price": input.UnitPrice,
		"case_price": input.CasePrice,
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Package != nil {
		updates["package"] = pq.Int64Array(*input.Package)
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.VideoURL != nil {
		updates["video_url"] = *input.VideoURL
	}
	if input.Brand != nil {
		brand, err := findByName[models.Brand](r.db.WithContext(ctx), *input.Brand)
		if err != nil {
			return nil, fmt.Errorf("resolve brand %q: %w", *input.Brand, err)
		}
		updates["brand_id"] = brand.ID
	}
	if input.Category != nil {
		category, err := findByName[models.Category](r.db.WithContext(ctx), *input.Category)
		if err != nil {
			return nil, fmt.Errorf("resolve category %q: %w", *input.Category, err)
		}
		updates["category_id"] = category.ID
	}

	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	if len(input.Colors) > 0 {
		colors, err := r.resolveColors(ctx, input.Colors)
		if err != nil {
			return nil, err
		}
		if err := r.db.WithContext(ctx).
			Model(&models.Product{ID: id}).
			Association("Colors").
			Append(&colors); err != nil {
			return nil, fmt.Errorf("connect colors: %w", err)
		}
	}
	if len(input.Effects) > 0 {
		effects, err := r.resolveEffects(ctx, input.Effects)
		if err != nil {
			return nil, err
		}
		if err := r.db.WithContext(ctx).
			Model(&models.Product{ID: id}).
			Association("Effects").
			Append(&effects); err != nil {
			return nil, fmt.Errorf("connect effects: %w", err)
		}
	}

	return r.FindByID(ctx, id)
}

// DeleteProduct loads the expanded row, removes it together with its
// association links, and returns the data that was deleted. A missing row
// propagates the store's not-found error unchanged.
func (r *Repository) DeleteProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&models.Product{ID: id}).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *Repository) resolveColors(ctx context.Context, names []string) ([]models.Color, error) {
	colors := make([]models.Color, 0, len(names))
	for _, name := range names {
		color, err := findByName[models.Color](r.db.WithContext(ctx), name)
		if err != nil {
			return nil, fmt.Errorf("resolve color %q: %w", name, err)
		}
		colors = append(colors, *color)
	}
	return colors, nil
}

func (r *Repository) resolveEffects(ctx context.Context, names []string) ([]models.Effect, error) {
	effects := make([]models.Effect, 0, len(names))
	for _, name := range names {
		effect, err := findByName[models.Effect](r.db.WithContext(ctx), name)
		if err != nil {
			return nil, fmt.Errorf("resolve effect %q: %w", name, err)
		}
		effects = append(effects, *effect)
	}
	return effects, nil
}

func findByName[T any](db *gorm.DB, name string) (*T, error) {
	var row T
	if err := db.Where("name = ?", name).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
