package service

import (
	"Scoops/config"
	"Scoops/dao"
	"Scoops/models"
	"Scoops/pkg/errorx"
	"Scoops/types"
	"context"

	"github.com/sourcegraph/conc/pool"
)

type DashboardService struct {
	Config     *config.Config
	StatsDAO   *dao.Stats
	OrderDAO   *dao.Order
	ProductDAO *dao.Product
}

var _ IDashboardService = (*DashboardService)(nil)

type IDashboardService interface {
	Stats(ctx context.Context) (*types.DashboardStats, error)
}

// Stats runs the independent rollups concurrently. They read without a shared snapshot.
func (s *DashboardService) Stats(ctx context.Context) (*types.DashboardStats, error) {
	out := &types.DashboardStats{TopProducts: make([]types.TopProduct, 0)}

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		revenue, err := s.StatsDAO.Revenue(ctx, models.OrderPaid, models.OrderShipped, models.OrderDelivered)
		out.TotalRevenue = revenue
		return err
	})
	p.Go(func(ctx context.Context) error {
		n, err := s.OrderDAO.CountByStatus(ctx)
		out.TotalOrders = n
		return err
	})
	p.Go(func(ctx context.Context) error {
		n, err := s.OrderDAO.CountByStatus(ctx, models.OrderPending)
		out.PendingOrders = n
		return err
	})
	p.Go(func(ctx context.Context) error {
		n, err := s.ProductDAO.CountLowStock(ctx, s.Config.Inventory.LowStockThreshold)
		out.LowStockCount = n
		return err
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.StatsDAO.TopProducts(ctx, s.Config.Inventory.TopProducts, models.OrderCanceled)
		for _, r := range rows {
			out.TopProducts = append(out.TopProducts, types.TopProduct{Name: r.Name, QuantitySold: r.QuantitySold})
		}
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, errorx.Wrap(err, "dashboard stats")
	}
	return out, nil
}
