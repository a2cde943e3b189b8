package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// money goes over the wire as a JSON number
	decimal.MarshalJSONWithoutQuotes = true
}

// Product maps the tb_products table. Inactive products are soft-deleted.
type Product struct {
	ID            int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name          string          `gorm:"size:150;not null;column:name" json:"name"`
	Description   string          `gorm:"size:500;column:description" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(18,2);not null;column:price" json:"price"`
	ImageUrl      string          `gorm:"size:512;column:image_url" json:"imageUrl"`
	IsActive      bool            `gorm:"not null;default:true;index:idx_products_active;column:is_active" json:"isActive"`
	Category      string          `gorm:"size:100;column:category" json:"category"`
	StockQuantity int             `gorm:"not null;default:0;column:stock_quantity" json:"stockQuantity"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Product) TableName() string {
	return "tb_products"
}
