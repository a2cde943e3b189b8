package dao

import (
	"Scoops/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PayRecord struct {
	Repo[models.PayRecord]
}

func NewPayRecord(db *gorm.DB) *PayRecord {
	return &PayRecord{
		Repo: NewRepo[models.PayRecord](db),
	}
}

// FirstOrCreate returns the stored record for the order, inserting record when none exists.
// Losing an insert race to another request yields the winner's record.
func (p *PayRecord) FirstOrCreate(ctx context.Context, record *models.PayRecord) (*models.PayRecord, error) {
	var out models.PayRecord
	err := p.Db.WithContext(ctx).
		Where(models.PayRecord{OrderID: record.OrderID}).
		Attrs(*record).
		FirstOrCreate(&out).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return p.FindByWhere(ctx, "order_id = ?", record.OrderID)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
