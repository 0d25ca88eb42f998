package handler

import (
	"github.com/dscatalog/catalog-system/internal/core/domain"
	"github.com/dscatalog/catalog-system/internal/core/ports"
)

// --- Request → Service input ---

func toProductInput(req productRequest) ports.ProductInput {
	ids := make([]int64, len(req.Categories))
	for i, ref := range req.Categories {
		ids[i] = ref.ID
	}
	return ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImgURL:      req.ImgURL,
		Date:        req.Date,
		CategoryIDs: ids,
	}
}

// --- Domain → HTTP response ---

func toProductResponse(p domain.Product) productResponse {
	categories := make([]categoryResponse, len(p.Categories))
	for i, c := range p.Categories {
		categories[i] = toCategoryResponse(c)
	}
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImgURL:      p.ImgURL,
		Date:        p.Date.UTC(),
		Categories:  categories,
	}
}

func toProductPage(p *ports.Page[domain.Product]) pageResponse[productResponse] {
	items := make([]productResponse, len(p.Content))
	for i, prod := range p.Content {
		items[i] = toProductResponse(prod)
	}
	return pageResponse[productResponse]{
		Content:       items,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Page:          p.Page,
		Size:          p.Size,
	}
}
