package ports

import (
	"context"

	"github.com/dscatalog/catalog-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
// Create and Update map a unique-email violation to ErrEmailTaken; missing
// rows become ErrUserNotFound.
type UserRepository interface {
	FindAll(ctx context.Context, q PageQuery) ([]domain.User, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists the user and its role associations, assigning the id.
	Create(ctx context.Context, u *domain.User) error
	// Update mutates first/last name and email only.
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// RoleRepository exposes the static role reference data.
type RoleRepository interface {
	FindAll(ctx context.Context) ([]domain.Role, error)
	FindByAuthority(ctx context.Context, authority string) (*domain.Role, error)
}
