package ports

import (
	"context"

	"github.com/dscatalog/catalog-system/internal/core/domain"
)

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Name string
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	List(ctx context.Context, q PageQuery) (*Page[domain.Category], error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, in CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id int64, in CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}
