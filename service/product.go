package service

import (
	"Scoops/dao"
	"Scoops/models"
	"Scoops/pkg/errorx"
	"Scoops/types"
	"context"
	"mime/multipart"
	"strings"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type ProductService struct {
	ProductDAO *dao.Product
	Storage    IFileStorage
}

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	Create(ctx context.Context, in *types.CreateProductInput, image *multipart.FileHeader) (*models.Product, error)
	ListActive(ctx context.Context) ([]*models.Product, error)
	ListPaged(ctx context.Context, page, size int) ([]*models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	Update(ctx context.Context, id int64, req *types.UpdateProductRequest) (*models.Product, error)
	Deactivate(ctx context.Context, id int64) error
}

func (s *ProductService) Create(ctx context.Context, in *types.CreateProductInput, image *multipart.FileHeader) (*models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errorx.Validation("name is required")
	}
	if in.Price.IsNegative() {
		return nil, errorx.Validation("price cannot be negative")
	}
	if in.StockQuantity < 0 {
		return nil, errorx.Validation("stock quantity cannot be negative")
	}

	product := &models.Product{
		Name:          name,
		Description:   in.Description,
		Price:         in.Price.Round(2),
		Category:      in.Category,
		StockQuantity: in.StockQuantity,
		IsActive:      true,
	}
	if image != nil {
		url, err := s.Storage.Save(ctx, image)
		if err != nil {
			return nil, err
		}
		product.ImageUrl = url
	}

	if err := s.ProductDAO.Create(ctx, product); err != nil {
		return nil, errorx.Wrap(err, "create product")
	}
	return product, nil
}

func (s *ProductService) ListActive(ctx context.Context) ([]*models.Product, error) {
	products, err := s.ProductDAO.ListActive(ctx)
	if err != nil {
		return nil, errorx.Wrap(err, "list products")
	}
	return products, nil
}

// ListPaged pages over active products; page starts at 0.
func (s *ProductService) ListPaged(ctx context.Context, page, size int) ([]*models.Product, error) {
	if page < 0 {
		return nil, errorx.Validation("page cannot be negative")
	}
	if size < 1 || size > maxPageSize {
		return nil, errorx.Validation("size must be between 1 and %d", maxPageSize)
	}
	products, err := s.ProductDAO.ListActivePaged(ctx, page, size)
	if err != nil {
		return nil, errorx.Wrap(err, "list products")
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.ProductDAO.FindById(ctx, id)
	if dao.IsNotFound(err) {
		return nil, errorx.NotFound("product %d not found", id)
	}
	if err != nil {
		return nil, errorx.Wrap(err, "find product")
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, req *types.UpdateProductRequest) (*models.Product, error) {
	fields := make(map[string]any)
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errorx.Validation("name cannot be empty")
		}
		fields["name"] = name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, errorx.Validation("price cannot be negative")
		}
		fields["price"] = req.Price.Round(2)
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if _, err := s.ProductDAO.UpdateById(ctx, id, fields); err != nil {
			return nil, errorx.Wrap(err, "update product")
		}
	}
	return s.Get(ctx, id)
}

// Deactivate soft-deletes: the row stays so past orders and deliveries keep resolving.
func (s *ProductService) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if _, err := s.ProductDAO.Deactivate(ctx, id); err != nil {
		return errorx.Wrap(err, "deactivate product")
	}
	return nil
}
