package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dscatalog/catalog-system/internal/api/metrics"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products.
//
// @Summary      List products (paged)
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        page          query     int     false  "Page index (0-based)"
// @Param        linesPerPage  query     int     false  "Page size (default 12, max 100)"
// @Param        orderBy       query     string  false  "Sort field (id, name, price, date)"
// @Param        direction     query     string  false  "ASC or DESC"
// @Success      200           {object}  map[string]any
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), pageQueryFromRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductPage(page))
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(*product))
}

// Create handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), toProductInput(req))
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("product", "create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/products/%d", created.ID))
	return c.JSON(http.StatusCreated, toProductResponse(*created))
}

// Update handles PUT /products/:id. The request body is the source of truth
// for every field, including the category set.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productRequest  true  "Product"
// @Success      200   {object}  productResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), id, toProductInput(req))
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("product", "update").Inc()
	return c.JSON(http.StatusOK, toProductResponse(*updated))
}

// Delete handles DELETE /products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  int  true  "Product id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("product", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
