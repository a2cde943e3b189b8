package dao

import (
	"Scoops/models"
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stats holds the read-only rollups behind the dashboard.
type Stats struct {
	Db *gorm.DB
}

func NewStats(db *gorm.DB) *Stats {
	return &Stats{Db: db}
}

type TopProduct struct {
	Name         string `gorm:"column:name"`
	QuantitySold int64  `gorm:"column:quantity_sold"`
}

func (s *Stats) Revenue(ctx context.Context, statuses ...models.OrderStatus) (decimal.Decimal, error) {
	var row struct {
		Total decimal.NullDecimal `gorm:"column:total"`
	}
	err := s.Db.WithContext(ctx).
		Model(&models.Order{}).
		Select("SUM(total) AS total").
		Where("status IN ?", statuses).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !row.Total.Valid {
		return decimal.Zero, nil
	}
	return row.Total.Decimal.Round(2), nil
}

// TopProducts ranks products by units sold, ignoring orders in the excluded statuses.
func (s *Stats) TopProducts(ctx context.Context, limit int, excluded ...models.OrderStatus) ([]TopProduct, error) {
	rows := make([]TopProduct, 0, limit)
	q := s.Db.WithContext(ctx).
		Table(models.OrderItem{}.TableName()+" AS oi").
		Select("p.name AS name, SUM(oi.quantity) AS quantity_sold").
		Joins("JOIN "+models.Product{}.TableName()+" p ON p.id = oi.product_id").
		Joins("JOIN "+models.Order{}.TableName()+" o ON o.id = oi.order_id")
	if len(excluded) > 0 {
		q = q.Where("o.status NOT IN ?", excluded)
	}
	err := q.Group("p.name").
		Order("quantity_sold DESC, p.name").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
