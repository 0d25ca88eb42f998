package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

// CategoryService implements CRUD over categories. Referential integrity on
// delete is enforced by the repository; this layer only owns the lifecycle
// rules and pagination normalisation.
type CategoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

func (s *CategoryService) List(ctx context.Context, q ports.PageQuery) (*ports.Page[domain.Category], error) {
	q = normalizePage(q, "name", "id", "name")

	items, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}
	return newPage(items, total, q), nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	c := &domain.Category{Name: in.Name}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info().Int64("category_id", c.ID).Str("name", c.Name).Msg("category created")
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, in ports.CategoryInput) (*domain.Category, error) {
	c := &domain.Category{ID: id, Name: in.Name}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info().Int64("category_id", id).Msg("category updated")
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("category_id", id).Msg("category deleted")
	return nil
}
