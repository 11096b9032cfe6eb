package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;default:gen_random_uuid();primaryKey" json:"product_id"`

	ProductName        string          `gorm:"column:product_name;type:varchar(150);not null" json:"product_name"`
	ProductCategory    string          `gorm:"column:product_category;type:varchar(60);not null;index" json:"product_category"`
	ProductPrice       decimal.Decimal `gorm:"column:product_price;type:numeric(12,2);not null" json:"product_price"`
	ProductDescription *string         `gorm:"column:product_description;type:text" json:"product_description,omitempty"`
	ProductImageURL    *string         `gorm:"column:product_image_url;type:text" json:"product_image_url,omitempty"`

	// Decremented by exactly one per completed checkout, always via the
	// guarded atomic UPDATE in the payment service.
	ProductStockQuantity int `gorm:"column:product_stock_quantity;not null;default:0;check:product_stock_quantity >= 0" json:"stockQuantity"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Product) TableName() string { return "products" }

func (p *Product) InStock() bool { return p.ProductStockQuantity > 0 }
