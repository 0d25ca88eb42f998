package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dscatalog/catalog-system/internal/api/metrics"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category operations.
// Domain errors propagate to the central HTTP error handler.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List handles GET /categories.
//
// @Summary      List categories (paged)
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        page          query     int     false  "Page index (0-based)"
// @Param        linesPerPage  query     int     false  "Page size (default 12, max 100)"
// @Param        orderBy       query     string  false  "Sort field (id, name)"
// @Param        direction     query     string  false  "ASC or DESC"
// @Success      200           {object}  map[string]any
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), pageQueryFromRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryPage(page))
}

// Get handles GET /categories/:id.
//
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  errorResponse
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	category, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(*category))
}

// Create handles POST /categories.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  errorResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), ports.CategoryInput{Name: req.Name})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("category", "create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/categories/%d", created.ID))
	return c.JSON(http.StatusCreated, toCategoryResponse(*created))
}

// Update handles PUT /categories/:id.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Category id"
// @Param        body  body      categoryRequest  true  "Category"
// @Success      200   {object}  categoryResponse
// @Failure      404   {object}  errorResponse
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), id, ports.CategoryInput{Name: req.Name})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("category", "update").Inc()
	return c.JSON(http.StatusOK, toCategoryResponse(*updated))
}

// Delete handles DELETE /categories/:id. Deleting a category that products
// still reference yields 400.
//
// @Summary      Delete a category
// @Tags         categories
// @Security     BearerAuth
// @Param        id  path  int  true  "Category id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("category", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
