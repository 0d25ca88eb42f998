package ports

import (
	"context"

	"github.com/dscatalog/catalog-system/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
// Create and Update persist the category association set from p.Categories
// (by id) atomically with the product row; an unknown category id surfaces
// as ErrIntegrityViolation.
type ProductRepository interface {
	FindAll(ctx context.Context, q PageQuery) ([]domain.Product, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) error
}
