package service

import "github.com/dscatalog/catalog-system/internal/core/ports"

const (
	defaultPageSize = 12
	maxPageSize     = 100
	// maxPage bounds the OFFSET: maxPage*maxPageSize must stay far below
	// the int range so repositories never compute a negative offset.
	maxPage = 1_000_000
)

// normalizePage clamps the page query and resolves the sort field against
// the entity's allowed set, falling back to defaultOrder. Keeping the
// whitelist here means repositories only ever see sortable fields.
func normalizePage(q ports.PageQuery, defaultOrder string, allowed ...string) ports.PageQuery {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Page > maxPage {
		q.Page = maxPage
	}
	if q.Size <= 0 {
		q.Size = defaultPageSize
	}
	if q.Size > maxPageSize {
		q.Size = maxPageSize
	}

	valid := false
	for _, f := range allowed {
		if q.OrderBy == f {
			valid = true
			break
		}
	}
	if !valid {
		q.OrderBy = defaultOrder
	}

	if q.Direction != "DESC" {
		q.Direction = "ASC"
	}
	return q
}

func newPage[T any](content []T, total int64, q ports.PageQuery) *ports.Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := int(total) / q.Size
	if int(total)%q.Size != 0 {
		pages++
	}
	return &ports.Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    pages,
		Page:          q.Page,
		Size:          q.Size,
	}
}
