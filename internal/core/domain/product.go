package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog item. Categories carries the full association set on
// reads; on writes only the category ids matter.
type Product struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	ImgURL      string     `json:"imgUrl"`
	Date        time.Time  `json:"date"`
	Categories  []Category `json:"categories"`
}
