package handler

import "time"

type categoryRefRequest struct {
	ID int64 `json:"id" validate:"required"`
}

type productRequest struct {
	Name        string               `json:"name"        validate:"required,notblank"`
	Description string               `json:"description" validate:"required,notblank"`
	Price       float64              `json:"price"       validate:"required,gt=0"`
	ImgURL      string               `json:"imgUrl"`
	Date        time.Time            `json:"date"`
	Categories  []categoryRefRequest `json:"categories"  validate:"dive"`
}

type productResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	ImgURL      string             `json:"imgUrl"`
	Date        time.Time          `json:"date"`
	Categories  []categoryResponse `json:"categories"`
}
