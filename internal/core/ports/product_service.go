package ports

import (
	"context"
	"time"

	"github.com/dscatalog/catalog-system/internal/core/domain"
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	ImgURL      string
	Date        time.Time
	CategoryIDs []int64
}

// ProductService defines use-case operations for products.
type ProductService interface {
	List(ctx context.Context, q PageQuery) (*Page[domain.Product], error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
