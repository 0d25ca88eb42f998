package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func queryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestPageQueryFromRequest_Defaults(t *testing.T) {
	q := pageQueryFromRequest(queryContext(t, ""))

	assert.Equal(t, 0, q.Page)
	assert.Equal(t, 12, q.Size)
	assert.Equal(t, "", q.OrderBy)
	assert.Equal(t, "ASC", q.Direction)
}

func TestPageQueryFromRequest_ParsesValues(t *testing.T) {
	q := pageQueryFromRequest(queryContext(t, "page=2&linesPerPage=25&orderBy=name&direction=desc"))

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.Size)
	assert.Equal(t, "name", q.OrderBy)
	assert.Equal(t, "DESC", q.Direction)
}

func TestPageQueryFromRequest_InvalidNumbersFallBack(t *testing.T) {
	q := pageQueryFromRequest(queryContext(t, "page=abc&linesPerPage=xyz"))

	assert.Equal(t, 0, q.Page)
	assert.Equal(t, 12, q.Size)
}

func TestPageQueryFromRequest_NegativeValuesFallBack(t *testing.T) {
	q := pageQueryFromRequest(queryContext(t, "page=-1&linesPerPage=-10"))

	assert.Equal(t, 0, q.Page)
	assert.Equal(t, 12, q.Size)
}

func TestPageQueryFromRequest_UnknownDirectionBecomesASC(t *testing.T) {
	q := pageQueryFromRequest(queryContext(t, "direction=sideways"))

	assert.Equal(t, "ASC", q.Direction)
}

func TestPathID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/categories/42", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("42")

	id, err := pathID(c)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	c.SetParamValues("not-a-number")
	_, err = pathID(c)
	assert.Error(t, err)
}
