package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

// categorySortColumns maps API sort fields to columns. The service layer
// already whitelists fields; the fallback here is belt and braces.
var categorySortColumns = map[string]string{
	"id":   "id",
	"name": "name",
}

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) FindAll(ctx context.Context, q ports.PageQuery) ([]domain.Category, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM categories`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT id, name FROM categories ORDER BY %s, id ASC LIMIT $1 OFFSET $2`,
		orderClause(categorySortColumns, q, "name"),
	)
	rows, err := r.pool.Query(ctx, query, q.Size, q.Page*q.Size)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	return out, total, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, c.Name).
		Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	tag, err := r.pool.Exec(ctx, `UPDATE categories SET name = $2 WHERE id = $1`, c.ID, c.Name)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Delete removes the category. A foreign key violation (products still
// reference it) surfaces as ErrIntegrityViolation and leaves the row intact.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// orderClause renders "column ASC|DESC" from a whitelisted sort map.
func orderClause(columns map[string]string, q ports.PageQuery, fallback string) string {
	col, ok := columns[q.OrderBy]
	if !ok {
		col = columns[fallback]
	}
	dir := "ASC"
	if q.Direction == "DESC" {
		dir = "DESC"
	}
	return col + " " + dir
}
