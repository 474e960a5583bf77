package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/fireshop-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/fireshop-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes catalog management operations.
type Service interface {
	ListProducts(ctx context.Context, params ListParams) ([]*ProductDTO, error)
	GetProduct(ctx context.Context, id int64) (*ProductDTO, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id int64) (*ProductDTO, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a product service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListProducts(ctx context.Context, params ListParams) ([]*ProductDTO, error) {
	limit, offset := params.Window()
	products, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		// List failures answer 400 with this message; legacy contract.
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Unable to find products")
	}

	items := make([]*ProductDTO, 0, len(products))
	for i := range products {
		items = append(items, NewListItemDTO(&products[i]))
	}
	return items, nil
}

func (s *service) GetProduct(ctx context.Context, id int64) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, MessageProductNotFound)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return NewDetailDTO(product), nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	product, err := s.repo.CreateProduct(ctx, input)
	if err != nil {
		// Unknown reference names and constraint violations both land here;
		// the caller sees a generic server error, the log keeps the cause.
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("product %d already exists", input.ID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return s.GetProduct(ctx, product.ID)
}

func (s *service) UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.repo.UpdateProduct(ctx, id, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return NewDetailDTO(product), nil
}

func (s *service) DeleteProduct(ctx context.Context, id int64) (*ProductDTO, error) {
	product, err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return NewDetailDTO(product), nil
}
