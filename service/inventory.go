package service

import (
	"Scoops/dao"
	"Scoops/models"
	"Scoops/pkg/errorx"
	"Scoops/pkg/log"
	"Scoops/types"
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InventoryService registers supplier deliveries, the only path that adds stock.
type InventoryService struct {
	DB          *gorm.DB
	SupplierDAO *dao.Supplier
	ProductDAO  *dao.Product
	DeliveryDAO *dao.Delivery
	Events      IEventPublisher
}

var _ IInventoryService = (*InventoryService)(nil)

type IInventoryService interface {
	RegisterDelivery(ctx context.Context, req *types.RegisterDeliveryRequest) (*models.Delivery, error)
	ListDeliveries(ctx context.Context) ([]*models.Delivery, error)
}

func validateDeliveryItems(items []types.DeliveryItemRequest) error {
	if len(items) == 0 {
		return errorx.Validation("delivery must have at least one item")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return errorx.Validation("quantity for product %d must be positive", item.ProductId)
		}
		if item.Price.IsNegative() {
			return errorx.Validation("price for product %d cannot be negative", item.ProductId)
		}
	}
	return nil
}

// RegisterDelivery adds every item to stock and records the delivery in one transaction.
// A missing supplier or product rolls the whole delivery back.
func (s *InventoryService) RegisterDelivery(ctx context.Context, req *types.RegisterDeliveryRequest) (*models.Delivery, error) {
	if err := validateDeliveryItems(req.Items); err != nil {
		return nil, err
	}

	delivery := &models.Delivery{
		Moment:     time.Now().UTC(),
		Status:     models.DeliveryStatusCompleted,
		SupplierID: req.SupplierId,
		Items:      make([]models.DeliveryItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		delivery.Items = append(delivery.Items, models.DeliveryItem{
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
			Price:     item.Price.Round(2),
		})
	}
	delivery.CalculateTotal()

	err := dao.Transaction(ctx, s.DB, func(tx *gorm.DB) error {
		if _, err := s.SupplierDAO.With(tx).FindById(ctx, req.SupplierId); err != nil {
			if dao.IsNotFound(err) {
				return errorx.NotFound("supplier %d not found", req.SupplierId)
			}
			return errorx.Wrap(err, "find supplier")
		}

		products := s.ProductDAO.With(tx)
		for _, item := range delivery.Items {
			rows, err := products.IncrementStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return errorx.Wrap(err, "increment stock")
			}
			if rows == 0 {
				return errorx.NotFound("product %d not found", item.ProductID)
			}
		}

		if err := s.DeliveryDAO.With(tx).CreateWithItems(ctx, delivery); err != nil {
			return errorx.Wrap(err, "create delivery")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.Info("delivery registered",
		zap.Int64("delivery_id", delivery.ID),
		zap.Int64("supplier_id", delivery.SupplierID),
		zap.String("total", delivery.Total.StringFixed(2)),
	)
	s.Events.Publish(ctx, types.EventDeliveryRegistered, delivery.ID, map[string]any{
		"supplierId": delivery.SupplierID,
		"total":      delivery.Total,
		"items":      len(delivery.Items),
	})
	return delivery, nil
}

func (s *InventoryService) ListDeliveries(ctx context.Context) ([]*models.Delivery, error) {
	deliveries, err := s.DeliveryDAO.ListWithAssociations(ctx)
	if err != nil {
		return nil, errorx.Wrap(err, "list deliveries")
	}
	return deliveries, nil
}
