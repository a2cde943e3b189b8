package service

import (
	"Scoops/dao"
	"Scoops/models"
	"Scoops/pkg/errorx"
	"Scoops/types"
	"context"
	"strings"
)

type SupplierService struct {
	SupplierDAO *dao.Supplier
}

var _ ISupplierService = (*SupplierService)(nil)

type ISupplierService interface {
	Create(ctx context.Context, req *types.CreateSupplierRequest) (*models.Supplier, error)
	List(ctx context.Context) ([]*models.Supplier, error)
	Get(ctx context.Context, id int64) (*models.Supplier, error)
	Delete(ctx context.Context, id int64) error
}

func (s *SupplierService) Create(ctx context.Context, req *types.CreateSupplierRequest) (*models.Supplier, error) {
	supplier := &models.Supplier{
		Name:         strings.TrimSpace(req.Name),
		Cnpj:         strings.TrimSpace(req.Cnpj),
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	}
	if supplier.Name == "" || supplier.Cnpj == "" {
		return nil, errorx.Validation("name and cnpj are required")
	}
	if err := s.SupplierDAO.Create(ctx, supplier); err != nil {
		return nil, errorx.Wrap(err, "create supplier")
	}
	return supplier, nil
}

func (s *SupplierService) List(ctx context.Context) ([]*models.Supplier, error) {
	suppliers, err := s.SupplierDAO.FindAll(ctx, "id")
	if err != nil {
		return nil, errorx.Wrap(err, "list suppliers")
	}
	return suppliers, nil
}

func (s *SupplierService) Get(ctx context.Context, id int64) (*models.Supplier, error) {
	supplier, err := s.SupplierDAO.FindById(ctx, id)
	if dao.IsNotFound(err) {
		return nil, errorx.NotFound("supplier %d not found", id)
	}
	if err != nil {
		return nil, errorx.Wrap(err, "find supplier")
	}
	return supplier, nil
}

// Delete refuses suppliers that deliveries still point at.
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	used, err := s.SupplierDAO.HasDeliveries(ctx, id)
	if err != nil {
		return errorx.Wrap(err, "check deliveries")
	}
	if used {
		return errorx.Conflict("supplier %d has deliveries", id)
	}
	if _, err = s.SupplierDAO.DeleteById(ctx, id); err != nil {
		return errorx.Wrap(err, "delete supplier")
	}
	return nil
}
