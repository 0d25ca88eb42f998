package ports

import (
	"context"

	"github.com/dscatalog/catalog-system/internal/core/domain"
)

// CreateUserInput carries the insert-only payload: the plaintext password is
// hashed by the service and never stored or echoed back. An empty RoleIDs
// set gets the default operator role.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	RoleIDs   []int64
}

// UpdateUserInput mutates profile fields only; passwords and roles are out
// of scope for update.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Email     string
}

// UserService defines use-case operations for users.
type UserService interface {
	List(ctx context.Context, q PageQuery) (*Page[domain.User], error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
