package handler

import (
	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

type categoryRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name}
}

func toCategoryPage(p *ports.Page[domain.Category]) pageResponse[categoryResponse] {
	items := make([]categoryResponse, len(p.Content))
	for i, c := range p.Content {
		items[i] = toCategoryResponse(c)
	}
	return pageResponse[categoryResponse]{
		Content:       items,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Page:          p.Page,
		Size:          p.Size,
	}
}
