package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	ProductName   string          `json:"product_name" validate:"required,max=150"`
	Category      string          `json:"category" validate:"required,max=60"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	Description   *string         `json:"description"`
	ImageURL      *string         `json:"image_url" validate:"omitempty,url"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
}

type UpdateProductRequest struct {
	ProductName   *string          `json:"product_name" validate:"omitempty,max=150"`
	Category      *string          `json:"category" validate:"omitempty,max=60"`
	Price         *decimal.Decimal `json:"price"`
	Description   *string          `json:"description"`
	ImageURL      *string          `json:"image_url" validate:"omitempty,url"`
	StockQuantity *int             `json:"stockQuantity" validate:"omitempty,gte=0"`
}
