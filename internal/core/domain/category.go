package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")

// ErrIntegrityViolation is returned when a delete would orphan rows that
// still reference the target (e.g. a category still linked to products).
var ErrIntegrityViolation = errors.New("integrity violation")

// Category groups products. Many-to-many with Product.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
