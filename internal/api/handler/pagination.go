package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dscatalog/catalog-system/internal/core/ports"
)

const (
	defaultPage = 0
	defaultSize = 12
)

// pageQueryFromRequest parses the list query parameters:
// page (0-based), linesPerPage, orderBy, direction (ASC/DESC).
// Out-of-range values fall back to defaults; the per-entity orderBy
// whitelist is applied later by the service.
func pageQueryFromRequest(c echo.Context) ports.PageQuery {
	q := ports.PageQuery{
		Page:      intParam(c, "page", defaultPage),
		Size:      intParam(c, "linesPerPage", defaultSize),
		OrderBy:   c.QueryParam("orderBy"),
		Direction: strings.ToUpper(c.QueryParam("direction")),
	}
	if q.Page < 0 {
		q.Page = defaultPage
	}
	if q.Size <= 0 {
		q.Size = defaultSize
	}
	if q.Direction != "DESC" {
		q.Direction = "ASC"
	}
	return q
}

func intParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// pathID parses the numeric {id} path parameter.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
