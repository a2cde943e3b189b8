package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo is embedded by every DAO and provides the common single-table operations.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// With returns a copy of the repo bound to tx.
func (r Repo[T]) With(tx *gorm.DB) Repo[T] {
	return Repo[T]{Db: tx}
}

func (r Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

func (r Repo[T]) FindById(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindAll(ctx context.Context, order string) ([]*T, error) {
	items := make([]*T, 0)
	q := r.Db.WithContext(ctx)
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Count(&count).Error
	return count > 0, err
}

func (r Repo[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}

// UpdateById applies data to one row and reports the affected row count.
func (r Repo[T]) UpdateById(ctx context.Context, id int64, data map[string]any) (int64, error) {
	res := r.Db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(data)
	return res.RowsAffected, res.Error
}

func (r Repo[T]) DeleteById(ctx context.Context, id int64) (int64, error) {
	res := r.Db.WithContext(ctx).Delete(new(T), id)
	return res.RowsAffected, res.Error
}

// IsNotFound reports whether err is gorm's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Transaction runs fn in a single unit of work; any error rolls everything back.
func Transaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
