package ports

import (
	"context"

	"github.com/dscatalog/catalog-system/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
// Implementations translate storage errors into the domain taxonomy:
// missing rows become ErrCategoryNotFound, a delete blocked by referencing
// products becomes ErrIntegrityViolation.
type CategoryRepository interface {
	FindAll(ctx context.Context, q PageQuery) ([]domain.Category, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	// Create persists the category and assigns its id.
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int64) error
}
