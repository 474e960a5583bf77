package product

import (
	"time"

	"github.com/angelmondragon/fireshop-backend/pkg/db/models"
)

// NamedRef is a resolved reference row. The id is only populated on the
// single-item fetch; list payloads carry names alone.
type NamedRef struct {
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name"`
}

// ProductDTO is the transport shape for catalog reads and write responses.
type ProductDTO struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	InStock     bool       `json:"inStock"`
	UnitPrice   string     `json:"unitPrice"`
	CasePrice   string     `json:"casePrice"`
	Package     []int64    `json:"package"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	VideoURL    string     `json:"videoURL"`
	Brand       NamedRef   `json:"brand"`
	Category    NamedRef   `json:"category"`
	Colors      []NamedRef `json:"colors"`
	Effects     []NamedRef `json:"effects"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewListItemDTO shapes a product for the list payload: associated rows are
// reduced to their names.
func NewListItemDTO(p *models.Product) *ProductDTO {
	return newDTO(p, false)
}

// NewDetailDTO shapes the fully-expanded product: colors and effects carry
// ids alongside names.
func NewDetailDTO(p *models.Product) *ProductDTO {
	return newDTO(p, true)
}

func newDTO(p *models.Product, withRefIDs bool) *ProductDTO {
	if p == nil {
		return nil
	}

	dto := &ProductDTO{
		ID:          p.ID,
		Title:       p.Title,
		InStock:     p.InStock,
		UnitPrice:   p.UnitPrice,
		CasePrice:   p.CasePrice,
		Package:     append([]int64(nil), []int64(p.Package)...),
		Description: p.Description,
		Image:       p.Image,
		VideoURL:    p.VideoURL,
		Brand:       NamedRef{Name: p.Brand.Name},
		Category:    NamedRef{Name: p.Category.Name},
		Colors:      make([]NamedRef, 0, len(p.Colors)),
		Effects:     make([]NamedRef, 0, len(p.Effects)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	for _, color := range p.Colors {
		dto.Colors = append(dto.Colors, namedRef(color.ID, color.Name, withRefIDs))
	}
	for _, effect := range p.Effects {
		dto.Effects = append(dto.Effects, namedRef(effect.ID, effect.Name, withRefIDs))
	}
	return dto
}

func namedRef(id int64, name string, withID bool) NamedRef {
	ref := NamedRef{Name: name}
	if withID {
		refID := id
		ref.ID = &refID
	}
	return ref
}
