package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dscatalog/catalog-system/internal/core/ports"
)

func TestOrderClause(t *testing.T) {
	columns := map[string]string{
		"id":        "id",
		"firstName": "first_name",
	}

	cases := []struct {
		name string
		q    ports.PageQuery
		want string
	}{
		{"known column asc", ports.PageQuery{OrderBy: "id", Direction: "ASC"}, "id ASC"},
		{"known column desc", ports.PageQuery{OrderBy: "id", Direction: "DESC"}, "id DESC"},
		{"camel case maps to snake", ports.PageQuery{OrderBy: "firstName", Direction: "ASC"}, "first_name ASC"},
		{"unknown column falls back", ports.PageQuery{OrderBy: "password_hash", Direction: "ASC"}, "id ASC"},
		{"injection attempt falls back", ports.PageQuery{OrderBy: "id; DROP TABLE users", Direction: "ASC"}, "id ASC"},
		{"unknown direction becomes asc", ports.PageQuery{OrderBy: "id", Direction: "descending"}, "id ASC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, orderClause(columns, tc.q, "id"))
		})
	}
}
