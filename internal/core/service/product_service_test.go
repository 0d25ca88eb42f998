package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

// categoryNames hydrates associations the way the real repository join does.
type stubProductRepo struct {
	byID          map[int64]*domain.Product
	categoryNames map[int64]string
	nextID        int64
	lastQuery     ports.PageQuery
	updateErr     error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		byID:          make(map[int64]*domain.Product),
		categoryNames: make(map[int64]string),
		nextID:        1,
	}
}

func (r *stubProductRepo) hydrate(p domain.Product) domain.Product {
	cats := make([]domain.Category, len(p.Categories))
	for i, c := range p.Categories {
		cats[i] = domain.Category{ID: c.ID, Name: r.categoryNames[c.ID]}
	}
	p.Categories = cats
	return p
}

func (r *stubProductRepo) FindAll(_ context.Context, q ports.PageQuery) ([]domain.Product, int64, error) {
	r.lastQuery = q
	var out []domain.Product
	for _, p := range r.byID {
		out = append(out, r.hydrate(*p))
	}
	return out, int64(len(r.byID)), nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := r.hydrate(*p)
	return &clone, nil
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	for _, c := range p.Categories {
		if _, ok := r.categoryNames[c.ID]; !ok {
			return domain.ErrIntegrityViolation
		}
	}
	p.ID = r.nextID
	r.nextID++
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	for _, c := range p.Categories {
		if _, ok := r.categoryNames[c.ID]; !ok {
			return domain.ErrIntegrityViolation
		}
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	return nil
}

func productInput(name string, categoryIDs ...int64) ports.ProductInput {
	return ports.ProductInput{
		Name:        name,
		Description: "desc",
		Price:       99.9,
		ImgURL:      "https://img.example.com/p.png",
		Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CategoryIDs: categoryIDs,
	}
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestProductService_Create_HydratesCategories(t *testing.T) {
	repo := newStubProductRepo()
	repo.categoryNames[1] = "Books"
	svc := NewProductService(repo, discardLogger)

	p, err := svc.Create(context.Background(), productInput("The Lord of the Rings", 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == 0 {
		t.Error("expected assigned id")
	}
	if len(p.Categories) != 1 || p.Categories[0].Name != "Books" {
		t.Errorf("expected hydrated category names in response, got %+v", p.Categories)
	}
}

func TestProductService_Create_UnknownCategory(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	_, err := svc.Create(context.Background(), productInput("PC Gamer", 404))
	if !errors.Is(err, domain.ErrIntegrityViolation) {
		t.Errorf("expected ErrIntegrityViolation for unknown category, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func TestProductService_Update_AppliesIncomingFields(t *testing.T) {
	repo := newStubProductRepo()
	repo.categoryNames[1] = "Books"
	repo.categoryNames[2] = "Electronics"
	svc := NewProductService(repo, discardLogger)

	created, err := svc.Create(context.Background(), productInput("Old name", 1))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	in := productInput("New name", 2)
	in.Price = 150
	in.Description = "new description"

	updated, err := svc.Update(context.Background(), created.ID, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "New name" {
		t.Errorf("name: expected %q, got %q", "New name", updated.Name)
	}
	if updated.Description != "new description" {
		t.Errorf("description: expected %q, got %q", "new description", updated.Description)
	}
	if updated.Price != 150 {
		t.Errorf("price: expected 150, got %v", updated.Price)
	}
	if len(updated.Categories) != 1 || updated.Categories[0].ID != 2 {
		t.Errorf("category set must be replaced by the incoming one, got %+v", updated.Categories)
	}

	stored := repo.byID[created.ID]
	if stored.Name != "New name" {
		t.Errorf("stored name not replaced: %q", stored.Name)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	_, err := svc.Update(context.Background(), 123, productInput("x"))
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Update_CanClearCategories(t *testing.T) {
	repo := newStubProductRepo()
	repo.categoryNames[1] = "Books"
	svc := NewProductService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), productInput("p", 1))

	updated, err := svc.Update(context.Background(), created.ID, productInput("p"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Categories) != 0 {
		t.Errorf("expected empty category set after clearing update, got %+v", updated.Categories)
	}
}

// ---------------------------------------------------------------------------
// List / Get / Delete tests
// ---------------------------------------------------------------------------

func TestProductService_List_AllowsPriceAndDateSort(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	_, _ = svc.List(context.Background(), ports.PageQuery{OrderBy: "price"})
	if repo.lastQuery.OrderBy != "price" {
		t.Errorf("price must be sortable, got %q", repo.lastQuery.OrderBy)
	}

	_, _ = svc.List(context.Background(), ports.PageQuery{OrderBy: "date"})
	if repo.lastQuery.OrderBy != "date" {
		t.Errorf("date must be sortable, got %q", repo.lastQuery.OrderBy)
	}

	_, _ = svc.List(context.Background(), ports.PageQuery{OrderBy: "imgUrl"})
	if repo.lastQuery.OrderBy != "name" {
		t.Errorf("imgUrl must fall back to name, got %q", repo.lastQuery.OrderBy)
	}
}

func TestProductService_Get_NotFound(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	_, err := svc.Get(context.Background(), 1)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete_RemovesProduct(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), productInput("p"))

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.byID[created.ID]; ok {
		t.Error("product still stored after delete")
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound on second delete, got %v", err)
	}
}
