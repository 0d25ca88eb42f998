package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dscatalog/catalog-system/internal/api/metrics"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users.
//
// @Summary      List users (paged)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page          query     int     false  "Page index (0-based)"
// @Param        linesPerPage  query     int     false  "Page size (default 12, max 100)"
// @Param        orderBy       query     string  false  "Sort field (id, firstName, lastName, email)"
// @Param        direction     query     string  false  "ASC or DESC"
// @Success      200           {object}  map[string]any
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), pageQueryFromRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserPage(page))
}

// Get handles GET /users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(*user))
}

// Create handles POST /users. The password is hashed by the service; a
// duplicate email yields 400.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User with plaintext password"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), toCreateUserInput(req))
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/users/%d", created.ID))
	return c.JSON(http.StatusCreated, toUserResponse(*created))
}

// Update handles PUT /users/:id. Only profile fields mutate here.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Profile fields"
// @Success      200   {object}  userResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "update").Inc()
	return c.JSON(http.StatusOK, toUserResponse(*updated))
}

// Delete handles DELETE /users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
