package product

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testSchema = []string{
	`CREATE TABLE brands (id integer PRIMARY KEY AUTOINCREMENT, name text NOT NULL UNIQUE)`,
	`CREATE TABLE categories (id integer PRIMARY KEY AUTOINCREMENT, name text NOT NULL UNIQUE)`,
	`CREATE TABLE colors (id integer PRIMARY KEY AUTOINCREMENT, name text NOT NULL UNIQUE)`,
	`CREATE TABLE effects (id integer PRIMARY KEY AUTOINCREMENT, name text NOT NULL UNIQUE)`,
	`CREATE TABLE products (
		id integer PRIMARY KEY,
		title text NOT NULL,
		in_stock boolean NOT NULL DEFAULT 0,
		unit_price text NOT NULL,
		case_price text NOT NULL,
		package text,
		description text,
		image text NOT NULL DEFAULT 'placeholder',
		video_url text,
		brand_id integer NOT NULL,
		category_id integer NOT NULL,
		created_at datetime,
		updated_at datetime
	)`,
	`CREATE TABLE product_colors (
		product_id integer NOT NULL,
		color_id integer NOT NULL,
		PRIMARY KEY (product_id, color_id)
	)`,
	`CREATE TABLE product_effects (
		product_id integer NOT NULL,
		effect_id integer NOT NULL,
		PRIMARY KEY (product_id, effect_id)
	)`,
	`INSERT INTO brands (name) VALUES ('Black Cat'), ('Winda')`,
	`INSERT INTO categories (name) VALUES ('Aerials'), ('Fountains')`,
	`INSERT INTO colors (name) VALUES ('Red'), ('Blue'), ('Green')`,
	`INSERT INTO effects (name) VALUES ('Crackle'), ('Strobe')`,
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	for _, stmt := range testSchema {
		if err := conn.Exec(stmt).Error; err != nil {
			t.Fatalf("schema statement failed: %v\n%s", err, stmt)
		}
	}
	return conn
}

func seedProduct(t *testing.T, repo *Repository, id int64) {
	t.Helper()

	_, err := repo.CreateProduct(context.Background(), CreateProductInput{
		ID:        id,
		Title:     "Thunder King",
		InStock:   true,
		UnitPrice: "5.50",
		CasePrice: "120.00",
		Package:   []int64{1, 4, 6},
		Image:     DefaultImage,
		Brand:     "Black Cat",
		Category:  "Aerials",
		Colors:    []string{"Red"},
		Effects:   []string{"Crackle"},
	})
	if err != nil {
		t.Fatalf("seed product %d: %v", id, err)
	}
}

func TestRepositoryCreateProduct(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	t.Run("resolves references by name", func(t *testing.T) {
		seedProduct(t, repo, 100)

		product, err := repo.FindByID(ctx, 100)
		if err != nil {
			t.Fatalf("find created product: %v", err)
		}
		if product.Brand.Name != "Black Cat" || product.Category.Name != "Aerials" {
			t.Fatalf("unexpected references %q / %q", product.Brand.Name, product.Category.Name)
		}
		if len(product.Colors) != 1 || product.Colors[0].Name != "Red" {
			t.Fatalf("unexpected colors %v", product.Colors)
		}
		if len(product.Effects) != 1 || product.Effects[0].Name != "Crackle" {
			t.Fatalf("unexpected effects %v", product.Effects)
		}
		if got := []int64(product.Package); len(got) != 3 || got[1] != 4 {
			t.Fatalf("package did not round trip: %v", got)
		}
	})

	t.Run("unknown brand fails before insert", func(t *testing.T) {
		_, err := repo.CreateProduct(ctx, CreateProductInput{
			ID:        101,
			Title:     "Ghost",
			UnitPrice: "1.00",
			CasePrice: "10.00",
			Brand:     "Nope",
			Category:  "Aerials",
		})
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Fatalf("expected record-not-found, got %v", err)
		}

		if _, err := repo.FindByID(ctx, 101); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Fatalf("row should not exist, got %v", err)
		}
	})
}

func TestRepositoryUpdateProduct(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()
	seedProduct(t, repo, 200)

	t.Run("partial update leaves absent fields alone", func(t *testing.T) {
		updated, err := repo.UpdateProduct(ctx, 200, UpdateProductInput{
			InStock:   false,
			UnitPrice: "6.00",
			CasePrice: "130.00",
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Title != "Thunder King" {
			t.Fatalf("title should be untouched, got %q", updated.Title)
		}
		if updated.InStock {
			t.Fatalf("in_stock should always follow the checkbox")
		}
		if updated.UnitPrice != "6.00" || updated.CasePrice != "130.00" {
			t.Fatalf("prices not applied: %q / %q", updated.UnitPrice, updated.CasePrice)
		}
	})

	t.Run("reference change resolves by name", func(t *testing.T) {
		brand := "Winda"
		updated, err := repo.UpdateProduct(ctx, 200, UpdateProductInput{
			UnitPrice: "6.00",
			CasePrice: "130.00",
			Brand:     &brand,
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Brand.Name != "Winda" {
			t.Fatalf("expected brand Winda, got %q", updated.Brand.Name)
		}
	})

	t.Run("colors connect on top of existing links", func(t *testing.T) {
		updated, err := repo.UpdateProduct(ctx, 200, UpdateProductInput{
			UnitPrice: "6.00",
			CasePrice: "130.00",
			Colors:    []string{"Blue"},
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if len(updated.Colors) != 2 {
			t.Fatalf("expected Red plus Blue, got %v", updated.Colors)
		}
	})

	t.Run("missing row reports not found", func(t *testing.T) {
		_, err := repo.UpdateProduct(ctx, 999, UpdateProductInput{
			UnitPrice: "1.00",
			CasePrice: "2.00",
		})
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Fatalf("expected record-not-found, got %v", err)
		}
	})
}

func TestRepositoryDeleteProduct(t *testing.T) {
	conn := setupDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	seedProduct(t, repo, 300)

	deleted, err := repo.DeleteProduct(ctx, 300)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Title != "Thunder King" {
		t.Fatalf("expected the removed row back, got %q", deleted.Title)
	}

	if _, err := repo.FindByID(ctx, 300); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("row should be gone, got %v", err)
	}

	var links int64
	if err := conn.Raw("SELECT count(*) FROM product_colors WHERE product_id = ?", 300).Scan(&links).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if links != 0 {
		t.Fatalf("expected association links removed, found %d", links)
	}

	if _, err := repo.DeleteProduct(ctx, 300); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("double delete should report not found, got %v", err)
	}
}

func TestRepositoryList(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()
	for _, id := range []int64{3, 1, 2} {
		seedProduct(t, repo, id)
	}

	products, err := repo.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected limit applied, got %d rows", len(products))
	}
	// Ordered ascending and windowed by limit only; the offset is ignored.
	if products[0].ID != 1 || products[1].ID != 2 {
		t.Fatalf("unexpected order: %d, %d", products[0].ID, products[1].ID)
	}
	if products[0].Brand.Name == "" {
		t.Fatalf("expected brand preloaded")
	}
}
