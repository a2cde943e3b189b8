package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const DeliveryStatusCompleted = "COMPLETED"

// Delivery is written once, together with its items, and never mutated.
type Delivery struct {
	ID         int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Moment     time.Time       `gorm:"not null;index:idx_deliveries_moment;column:moment" json:"moment"`
	Status     string          `gorm:"size:20;not null;column:status" json:"status"`
	Total      decimal.Decimal `gorm:"type:decimal(18,2);not null;column:total" json:"total"`
	SupplierID int64           `gorm:"not null;index:idx_deliveries_supplier;column:supplier_id" json:"supplierId"`
	Supplier   *Supplier       `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Items      []DeliveryItem  `gorm:"foreignKey:DeliveryID" json:"items"`
}

func (Delivery) TableName() string {
	return "tb_deliveries"
}

// CalculateTotal sets Total to the sum of item subtotals.
func (d *Delivery) CalculateTotal() {
	total := decimal.Zero
	for _, item := range d.Items {
		total = total.Add(item.Subtotal())
	}
	d.Total = total.Round(2)
}

type DeliveryItem struct {
	ID         int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Quantity   int             `gorm:"not null;column:quantity" json:"quantity"`
	Price      decimal.Decimal `gorm:"type:decimal(18,2);not null;column:price" json:"price"`
	DeliveryID int64           `gorm:"not null;index:idx_delivery_items_delivery;column:delivery_id" json:"-"`
	ProductID  int64           `gorm:"not null;index:idx_delivery_items_product;column:product_id" json:"productId"`
	Product    *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (DeliveryItem) TableName() string {
	return "tb_delivery_items"
}

func (i DeliveryItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
