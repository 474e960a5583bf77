package models

import (
	"time"

	"github.com/lib/pq"
)

// Product represents a catalog listing. IDs are caller-supplied and mirror
// the vendor's catalog numbering, so the column does not auto-increment.
type Product struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Title   string `gorm:"column:title;not null" json:"title"`
	InStock bool   `gorm:"column:in_stock;not null;default:false" json:"inStock"`
	// Prices are persisted as numeric(10,2) and always carry exactly two
	// fractional digits; normalization happens before any write.
	UnitPrice   string        `gorm:"column:unit_price;type:numeric(10,2);not null" json:"unitPrice"`
	CasePrice   string        `gorm:"column:case_price;type:numeric(10,2);not null" json:"casePrice"`
	Package     pq.Int64Array `gorm:"column:package;type:bigint[]" json:"package"`
	Description string        `gorm:"column:description" json:"description"`
	Image       string        `gorm:"column:image;not null;default:placeholder" json:"image"`
	VideoURL    string        `gorm:"column:video_url" json:"videoURL"`
	BrandID     int64         `gorm:"column:brand_id;not null" json:"-"`
	Brand       Brand         `json:"-"`
	CategoryID  int64         `gorm:"column:category_id;not null" json:"-"`
	Category    Category      `json:"-"`
	Colors      []Color       `gorm:"many2many:product_colors" json:"-"`
	Effects     []Effect      `gorm:"many2many:product_effects" json:"-"`
	CreatedAt   time.Time     `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
