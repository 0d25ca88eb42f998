package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

// ProductService implements CRUD over products, carrying the category
// association set on both reads and writes.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) List(ctx context.Context, q ports.PageQuery) (*ports.Page[domain.Product], error) {
	q = normalizePage(q, "name", "id", "name", "price", "date")

	items, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}
	return newPage(items, total, q), nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	p := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImgURL:      in.ImgURL,
		Date:        in.Date,
		Categories:  categoriesFromIDs(in.CategoryIDs),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("product created")

	// Re-read so the response carries category names, not just ids.
	return s.repo.FindByID(ctx, p.ID)
}

// Update applies the incoming fields, including the category set, as the
// source of truth for the stored entity.
func (s *ProductService) Update(ctx context.Context, id int64, in ports.ProductInput) (*domain.Product, error) {
	p := &domain.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImgURL:      in.ImgURL,
		Date:        in.Date,
		Categories:  categoriesFromIDs(in.CategoryIDs),
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info().Int64("product_id", id).Msg("product updated")
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

func categoriesFromIDs(ids []int64) []domain.Category {
	out := make([]domain.Category, len(ids))
	for i, id := range ids {
		out[i] = domain.Category{ID: id}
	}
	return out
}
