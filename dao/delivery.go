package dao

import (
	"Scoops/models"
	"context"

	"gorm.io/gorm"
)

type Delivery struct {
	Repo[models.Delivery]
}

func NewDelivery(db *gorm.DB) *Delivery {
	return &Delivery{
		Repo: NewRepo[models.Delivery](db),
	}
}

func (d *Delivery) With(tx *gorm.DB) *Delivery {
	return &Delivery{Repo: d.Repo.With(tx)}
}

// CreateWithItems inserts the delivery and its items. The supplier row is never written.
func (d *Delivery) CreateWithItems(ctx context.Context, delivery *models.Delivery) error {
	return d.Db.WithContext(ctx).
		Omit("Supplier").
		Create(delivery).Error
}

// ListWithAssociations returns every delivery, newest first, with supplier and item products loaded.
func (d *Delivery) ListWithAssociations(ctx context.Context) ([]*models.Delivery, error) {
	deliveries := make([]*models.Delivery, 0)
	err := d.Db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Items.Product").
		Order("moment DESC, id DESC").
		Find(&deliveries).Error
	return deliveries, err
}
