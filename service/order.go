package service

import (
	"Scoops/config"
	"Scoops/dao"
	"Scoops/models"
	"Scoops/pkg/errorx"
	"Scoops/pkg/log"
	"Scoops/pkg/pix"
	"Scoops/pkg/utils"
	"Scoops/types"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderService struct {
	Config       *config.Config
	DB           *gorm.DB
	OrderDAO     *dao.Order
	ProductDAO   *dao.Product
	PayRecordDAO *dao.PayRecord
	Events       IEventPublisher
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	Create(ctx context.Context, clientLogin string, req *types.CreateOrderRequest) (*models.Order, error)
	ListForClient(ctx context.Context, clientLogin string) ([]*models.Order, error)
	ListAll(ctx context.Context) ([]*models.Order, error)
	Get(ctx context.Context, id int64, requesterLogin string, isAdmin bool) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdateLinks(ctx context.Context, id int64, req *types.UpdateOrderLinksRequest) (*models.Order, error)
	GeneratePix(ctx context.Context, id int64) (*types.PixResponse, error)
}

// Create prices every item from the current catalog and reserves its stock.
func (s *OrderService) Create(ctx context.Context, clientLogin string, req *types.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, errorx.Validation("order must have at least one item")
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, errorx.Validation("quantity for product %d must be positive", item.ProductId)
		}
	}

	order := &models.Order{
		Moment:          time.Now().UTC(),
		Status:          models.OrderPending,
		ClientLogin:     clientLogin,
		DeliveryAddress: req.Address,
		ContactPhone:    req.Phone,
		Items:           make([]models.OrderItem, 0, len(req.Items)),
	}
	snapshots := make([]*models.Product, 0, len(req.Items))

	err := dao.Transaction(ctx, s.DB, func(tx *gorm.DB) error {
		products := s.ProductDAO.With(tx)
		total := decimal.Zero
		for _, item := range req.Items {
			product, err := products.FindForUpdate(ctx, item.ProductId)
			if dao.IsNotFound(err) {
				return errorx.Validation("product %d not found", item.ProductId)
			}
			if err != nil {
				return errorx.Wrap(err, "find product")
			}
			if !product.IsActive {
				return errorx.Validation("product %d is not available", item.ProductId)
			}

			rows, err := products.DecrementStock(ctx, product.ID, item.Quantity)
			if err != nil {
				return errorx.Wrap(err, "decrement stock")
			}
			if rows == 0 {
				return errorx.Validation("insufficient stock for product %d", item.ProductId)
			}
			product.StockQuantity -= item.Quantity

			orderItem := models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			}
			total = total.Add(orderItem.Subtotal())
			order.Items = append(order.Items, orderItem)
			snapshots = append(snapshots, product)
		}
		order.Total = total.Round(2)

		if err := s.OrderDAO.With(tx).CreateWithItems(ctx, order); err != nil {
			return errorx.Wrap(err, "create order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range order.Items {
		order.Items[i].Product = snapshots[i]
	}
	log.L.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.String("client", clientLogin),
		zap.String("total", order.Total.StringFixed(2)),
	)
	s.Events.Publish(ctx, types.EventOrderCreated, order.ID, map[string]any{
		"clientLogin": order.ClientLogin,
		"total":       order.Total,
	})
	return order, nil
}

func (s *OrderService) ListForClient(ctx context.Context, clientLogin string) ([]*models.Order, error) {
	orders, err := s.OrderDAO.ListByClient(ctx, clientLogin)
	if err != nil {
		return nil, errorx.Wrap(err, "list orders")
	}
	return orders, nil
}

func (s *OrderService) ListAll(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.OrderDAO.ListAll(ctx)
	if err != nil {
		return nil, errorx.Wrap(err, "list orders")
	}
	return orders, nil
}

func (s *OrderService) find(ctx context.Context, orders *dao.Order, id int64) (*models.Order, error) {
	order, err := orders.FindWithItems(ctx, id)
	if dao.IsNotFound(err) {
		return nil, errorx.NotFound("order %d not found", id)
	}
	if err != nil {
		return nil, errorx.Wrap(err, "find order")
	}
	return order, nil
}

// Get returns the order to its owner or to an admin.
func (s *OrderService) Get(ctx context.Context, id int64, requesterLogin string, isAdmin bool) (*models.Order, error) {
	order, err := s.find(ctx, s.OrderDAO, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.ClientLogin != requesterLogin {
		return nil, errorx.Forbidden("order %d belongs to another client", id)
	}
	return order, nil
}

// UpdateStatus moves the order along the status graph. Canceling returns the reserved stock.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) error {
	next, ok := models.ParseOrderStatus(status)
	if !ok {
		return errorx.Validation("unknown order status %q", status)
	}

	var prev models.OrderStatus
	changed := false
	err := dao.Transaction(ctx, s.DB, func(tx *gorm.DB) error {
		orders := s.OrderDAO.With(tx)
		order, err := s.find(ctx, orders, id)
		if err != nil {
			return err
		}
		prev = order.Status
		if prev == next {
			return nil
		}
		if !prev.CanTransitionTo(next) {
			return errorx.Validation("cannot change order status from %s to %s", prev, next)
		}

		if next == models.OrderCanceled {
			products := s.ProductDAO.With(tx)
			for _, item := range order.Items {
				if _, err = products.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
					return errorx.Wrap(err, "restore stock")
				}
			}
		}

		if _, err = orders.UpdateById(ctx, id, map[string]any{"status": next}); err != nil {
			return errorx.Wrap(err, "update status")
		}
		changed = true
		return nil
	})
	if err != nil {
		return err
	}

	if changed {
		log.L.Info("order status changed", zap.Int64("order_id", id), zap.String("from", string(prev)), zap.String("to", string(next)))
		s.Events.Publish(ctx, types.EventOrderStatusChanged, id, map[string]any{
			"from": prev,
			"to":   next,
		})
	}
	return nil
}

// UpdateLinks overwrites only the links present in req.
func (s *OrderService) UpdateLinks(ctx context.Context, id int64, req *types.UpdateOrderLinksRequest) (*models.Order, error) {
	if _, err := s.find(ctx, s.OrderDAO, id); err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if req.InstagramReelUrl != nil {
		fields["instagram_reel_url"] = strings.TrimSpace(*req.InstagramReelUrl)
	}
	if req.TrackingUrl != nil {
		fields["tracking_url"] = strings.TrimSpace(*req.TrackingUrl)
	}
	if len(fields) > 0 {
		if _, err := s.OrderDAO.UpdateById(ctx, id, fields); err != nil {
			return nil, errorx.Wrap(err, "update links")
		}
	}
	return s.find(ctx, s.OrderDAO, id)
}

type pixCharge struct {
	Code string `json:"code"`
}

// GeneratePix builds the static PIX code for the order and records it; later calls return the recorded code.
func (s *OrderService) GeneratePix(ctx context.Context, id int64) (*types.PixResponse, error) {
	order, err := s.OrderDAO.FindById(ctx, id)
	if dao.IsNotFound(err) {
		return nil, errorx.NotFound("order %d not found", id)
	}
	if err != nil {
		return nil, errorx.Wrap(err, "find order")
	}

	conf := s.Config.Pix
	txID := utils.GenHashID(conf.Salt, order.ID)
	code := pix.Payload{
		Key:          conf.Key,
		MerchantName: conf.MerchantName,
		City:         conf.City,
		Amount:       order.Total,
		TxID:         txID,
	}.String()

	payload, err := json.Marshal(pixCharge{Code: code})
	if err != nil {
		return nil, errorx.Wrap(err, "marshal pix payload")
	}
	record, err := s.PayRecordDAO.FirstOrCreate(ctx, &models.PayRecord{
		OrderID: order.ID,
		TxID:    txID,
		Amount:  order.Total,
		Payload: datatypes.JSON(payload),
	})
	if err != nil {
		return nil, errorx.Wrap(err, "record pix charge")
	}

	var stored pixCharge
	if err = json.Unmarshal(record.Payload, &stored); err == nil && stored.Code != "" {
		code = stored.Code
	}
	return &types.PixResponse{Code: code, Total: record.Amount}, nil
}
