package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

// UserService implements CRUD over users. Insert hashes the plaintext
// password before it ever reaches the repository; update never touches
// password or roles.
type UserService struct {
	repo  ports.UserRepository
	roles ports.RoleRepository
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, roles ports.RoleRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, roles: roles, log: log}
}

func (s *UserService) List(ctx context.Context, q ports.PageQuery) (*ports.Page[domain.User], error) {
	q = normalizePage(q, "firstName", "id", "firstName", "lastName", "email")

	items, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}
	return newPage(items, total, q), nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	// Insert-only rule: the email must not already be registered. The unique
	// index catches the race; this check gives the common case a clean error
	// without relying on the storage layer.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	roles, err := s.resolveRoles(ctx, in.RoleIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", u.ID).Str("email", u.Email).Msg("user created")

	// Re-read so the response carries role authorities, not just ids.
	return s.repo.FindByID(ctx, u.ID)
}

// resolveRoles maps the requested role ids onto the role table, so an
// unknown id fails before the insert. An empty request gets the default
// operator role.
func (s *UserService) resolveRoles(ctx context.Context, roleIDs []int64) ([]domain.Role, error) {
	if len(roleIDs) == 0 {
		operator, err := s.roles.FindByAuthority(ctx, domain.RoleOperator)
		if err != nil {
			return nil, err
		}
		return []domain.Role{*operator}, nil
	}

	known, err := s.roles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Role, len(known))
	for _, r := range known {
		byID[r.ID] = r
	}

	roles := make([]domain.Role, 0, len(roleIDs))
	for _, id := range roleIDs {
		r, ok := byID[id]
		if !ok {
			return nil, domain.ErrRoleNotFound
		}
		roles = append(roles, r)
	}
	return roles, nil
}

func (s *UserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	u := &domain.User{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", id).Msg("user updated")
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
