package domain

import (
	"errors"
	"time"
)

// Role authorities are static reference data seeded at schema creation.
const (
	RoleOperator = "ROLE_OPERATOR"
	RoleAdmin    = "ROLE_ADMIN"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidClient      = errors.New("invalid client credentials")
	ErrUnsupportedGrant   = errors.New("unsupported grant type")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

// Role is a named authority granted to users. Many-to-many with User.
type Role struct {
	ID        int64  `json:"id"`
	Authority string `json:"authority"`
}

// User models an authenticated actor. The password hash never serialises.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HasAuthority reports whether the user carries the given role label.
func (u *User) HasAuthority(authority string) bool {
	for _, r := range u.Roles {
		if r.Authority == authority {
			return true
		}
	}
	return false
}
