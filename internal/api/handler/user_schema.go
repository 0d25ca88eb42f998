package handler

import (
	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

type roleRefRequest struct {
	ID int64 `json:"id" validate:"required"`
}

// createUserRequest is the insert-only payload: the plaintext password is
// accepted here once and never appears in any response.
type createUserRequest struct {
	FirstName string           `json:"firstName" validate:"required,notblank"`
	LastName  string           `json:"lastName"`
	Email     string           `json:"email"     validate:"required,email"`
	Password  string           `json:"password"  validate:"required,min=8"`
	Roles     []roleRefRequest `json:"roles"     validate:"dive"`
}

type updateUserRequest struct {
	FirstName string `json:"firstName" validate:"required,notblank"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"     validate:"required,email"`
}

type roleResponse struct {
	ID        int64  `json:"id"`
	Authority string `json:"authority"`
}

type userResponse struct {
	ID        int64          `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Email     string         `json:"email"`
	Roles     []roleResponse `json:"roles"`
}

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	ids := make([]int64, len(req.Roles))
	for i, ref := range req.Roles {
		ids[i] = ref.ID
	}
	return ports.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		RoleIDs:   ids,
	}
}

func toUserResponse(u domain.User) userResponse {
	roles := make([]roleResponse, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = roleResponse{ID: r.ID, Authority: r.Authority}
	}
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Roles:     roles,
	}
}

func toUserPage(p *ports.Page[domain.User]) pageResponse[userResponse] {
	items := make([]userResponse, len(p.Content))
	for i, u := range p.Content {
		items[i] = toUserResponse(u)
	}
	return pageResponse[userResponse]{
		Content:       items,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Page:          p.Page,
		Size:          p.Size,
	}
}
