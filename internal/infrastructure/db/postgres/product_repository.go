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

var productSortColumns = map[string]string{
	"id":    "id",
	"name":  "name",
	"price": "price",
	"date":  "date",
}

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) FindAll(ctx context.Context, q ports.PageQuery) ([]domain.Product, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT id, name, description, price, img_url, date
		 FROM products ORDER BY %s, id ASC LIMIT $1 OFFSET $2`,
		orderClause(productSortColumns, q, "name"),
	)
	rows, err := r.pool.Query(ctx, query, q.Size, q.Page*q.Size)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	var ids []int64
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImgURL, &p.Date); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	if err := r.attachCategories(ctx, out, ids); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, price, img_url, date FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImgURL, &p.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}

	list := []domain.Product{p}
	if err := r.attachCategories(ctx, list, []int64{p.ID}); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// Create inserts the product row and its category links in one transaction.
// An unknown category id violates the FK and rolls the whole insert back.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin insert product: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO products (name, description, price, img_url, date)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		p.Name, p.Description, p.Price, p.ImgURL, p.Date).
		Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", translateError(err))
	}

	if err := insertProductCategories(ctx, tx, p.ID, p.Categories); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update replaces the product fields and its association set atomically.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update product: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE products SET name = $2, description = $3, price = $4, img_url = $5, date = $6
		 WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Price, p.ImgURL, p.Date)
	if err != nil {
		return fmt.Errorf("update product: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM product_categories WHERE product_id = $1`, p.ID); err != nil {
		return fmt.Errorf("clear product categories: %w", err)
	}
	if err := insertProductCategories(ctx, tx, p.ID, p.Categories); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func insertProductCategories(ctx context.Context, tx pgx.Tx, productID int64, categories []domain.Category) error {
	for _, c := range categories {
		_, err := tx.Exec(ctx,
			`INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			productID, c.ID)
		if err != nil {
			return fmt.Errorf("link product category %d: %w", c.ID, translateError(err))
		}
	}
	return nil
}

// attachCategories loads the category sets for the given product ids and
// fills them into products (matched by position in ids).
func (r *ProductRepository) attachCategories(ctx context.Context, products []domain.Product, ids []int64) error {
	for i := range products {
		products[i].Categories = []domain.Category{}
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT pc.product_id, c.id, c.name
		 FROM product_categories pc
		 JOIN categories c ON c.id = pc.category_id
		 WHERE pc.product_id = ANY($1)
		 ORDER BY c.id ASC`, ids)
	if err != nil {
		return fmt.Errorf("load product categories: %w", err)
	}
	defer rows.Close()

	byProduct := make(map[int64][]domain.Category, len(ids))
	for rows.Next() {
		var productID int64
		var c domain.Category
		if err := rows.Scan(&productID, &c.ID, &c.Name); err != nil {
			return fmt.Errorf("scan product category: %w", err)
		}
		byProduct[productID] = append(byProduct[productID], c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load product categories: %w", err)
	}

	for i := range products {
		if cats, ok := byProduct[products[i].ID]; ok {
			products[i].Categories = cats
		}
	}
	return nil
}
