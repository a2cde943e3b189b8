package dao

import (
	"Scoops/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

func (p *Product) With(tx *gorm.DB) *Product {
	return &Product{Repo: p.Repo.With(tx)}
}

func (p *Product) ListActive(ctx context.Context) ([]*models.Product, error) {
	products := make([]*models.Product, 0)
	err := p.Db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&products).Error
	return products, err
}

func (p *Product) ListActivePaged(ctx context.Context, page, size int) ([]*models.Product, error) {
	products := make([]*models.Product, 0, size)
	err := p.Db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Offset(page * size).
		Limit(size).
		Find(&products).Error
	return products, err
}

// FindForUpdate locks the row until the surrounding transaction ends.
// Dialects without row locks ignore the clause.
func (p *Product) FindForUpdate(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := p.Db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// IncrementStock adds quantity in a single statement; zero rows means the product does not exist.
func (p *Product) IncrementStock(ctx context.Context, id int64, quantity int) (int64, error) {
	res := p.Db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	return res.RowsAffected, res.Error
}

// DecrementStock only succeeds when enough stock is left, so stock never goes negative.
func (p *Product) DecrementStock(ctx context.Context, id int64, quantity int) (int64, error) {
	res := p.Db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", id, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	return res.RowsAffected, res.Error
}

func (p *Product) Deactivate(ctx context.Context, id int64) (int64, error) {
	return p.Repo.UpdateById(ctx, id, map[string]any{"is_active": false})
}

func (p *Product) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var count int64
	err := p.Db.WithContext(ctx).
		Model(&models.Product{}).
		Where("is_active = ? AND stock_quantity < ?", true, threshold).
		Count(&count).Error
	return count, err
}
