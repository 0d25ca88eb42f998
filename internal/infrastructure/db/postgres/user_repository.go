package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

var userSortColumns = map[string]string{
	"id":        "id",
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindAll(ctx context.Context, q ports.PageQuery) ([]domain.User, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
		 FROM users ORDER BY %s, id ASC LIMIT $1 OFFSET $2`,
		orderClause(userSortColumns, q, "firstName"),
	)
	rows, err := r.pool.Query(ctx, query, q.Size, q.Page*q.Size)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []domain.User
	var ids []int64
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
		ids = append(ids, u.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	if err := r.attachRoles(ctx, out, ids); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `WHERE lower(email) = lower($1)`, strings.TrimSpace(email))
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
		 FROM users `+where, arg).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	list := []domain.User{u}
	if err := r.attachRoles(ctx, list, []int64{u.ID}); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// Create inserts the user row and its role associations in one transaction.
// A duplicate email surfaces as ErrEmailTaken, an unknown role id as
// ErrIntegrityViolation.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin insert user: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		u.FirstName, u.LastName, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		Scan(&u.ID)
	if err != nil {
		return translateError(err)
	}

	for _, role := range u.Roles {
		_, err := tx.Exec(ctx,
			`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			u.ID, role.ID)
		if err != nil {
			return fmt.Errorf("link user role %d: %w", role.ID, translateError(err))
		}
	}
	return tx.Commit(ctx)
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET first_name = $2, last_name = $3, email = $4, updated_at = $5
		 WHERE id = $1`,
		u.ID, u.FirstName, u.LastName, u.Email, u.UpdatedAt)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepository) attachRoles(ctx context.Context, users []domain.User, ids []int64) error {
	for i := range users {
		users[i].Roles = []domain.Role{}
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT ur.user_id, ro.id, ro.authority
		 FROM user_roles ur
		 JOIN roles ro ON ro.id = ur.role_id
		 WHERE ur.user_id = ANY($1)
		 ORDER BY ro.id ASC`, ids)
	if err != nil {
		return fmt.Errorf("load user roles: %w", err)
	}
	defer rows.Close()

	byUser := make(map[int64][]domain.Role, len(ids))
	for rows.Next() {
		var userID int64
		var role domain.Role
		if err := rows.Scan(&userID, &role.ID, &role.Authority); err != nil {
			return fmt.Errorf("scan user role: %w", err)
		}
		byUser[userID] = append(byUser[userID], role)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load user roles: %w", err)
	}

	for i := range users {
		if roles, ok := byUser[users[i].ID]; ok {
			users[i].Roles = roles
		}
	}
	return nil
}

// RoleRepository exposes the static role rows seeded by the migration.
type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, authority FROM roles ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var out []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Authority); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

func (r *RoleRepository) FindByAuthority(ctx context.Context, authority string) (*domain.Role, error) {
	var role domain.Role
	err := r.pool.QueryRow(ctx, `SELECT id, authority FROM roles WHERE authority = $1`, authority).
		Scan(&role.ID, &role.Authority)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRoleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &role, nil
}
