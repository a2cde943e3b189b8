package dao

import (
	"Scoops/models"
	"context"

	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{
		Repo: NewRepo[models.Order](db),
	}
}

func (o *Order) With(tx *gorm.DB) *Order {
	return &Order{Repo: o.Repo.With(tx)}
}

func (o *Order) CreateWithItems(ctx context.Context, order *models.Order) error {
	return o.Db.WithContext(ctx).Create(order).Error
}

func (o *Order) withItems(ctx context.Context) *gorm.DB {
	return o.Db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Items.Product")
}

func (o *Order) ListByClient(ctx context.Context, login string) ([]*models.Order, error) {
	orders := make([]*models.Order, 0)
	err := o.withItems(ctx).
		Where("client_login = ?", login).
		Order("moment DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (o *Order) ListAll(ctx context.Context) ([]*models.Order, error) {
	orders := make([]*models.Order, 0)
	err := o.withItems(ctx).
		Order("moment DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (o *Order) FindWithItems(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := o.withItems(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *Order) CountByStatus(ctx context.Context, statuses ...models.OrderStatus) (int64, error) {
	var count int64
	q := o.Db.WithContext(ctx).Model(&models.Order{})
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	err := q.Count(&count).Error
	return count, err
}
