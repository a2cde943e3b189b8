package dao

import (
	"Scoops/models"
	"context"

	"gorm.io/gorm"
)

type Supplier struct {
	Repo[models.Supplier]
}

func NewSupplier(db *gorm.DB) *Supplier {
	return &Supplier{
		Repo: NewRepo[models.Supplier](db),
	}
}

func (s *Supplier) With(tx *gorm.DB) *Supplier {
	return &Supplier{Repo: s.Repo.With(tx)}
}

func (s *Supplier) HasDeliveries(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := s.Db.WithContext(ctx).
		Model(&models.Delivery{}).
		Where("supplier_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
