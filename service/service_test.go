package service

import (
	"Scoops/config"
	"Scoops/dao"
	"Scoops/dao/cache"
	"Scoops/internal/testutil"
	"Scoops/models"
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordedEvent struct {
	Type string
	Id   int64
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, eventType string, id int64, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Type: eventType, Id: id})
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type testEnv struct {
	ctx    context.Context
	conf   *config.Config
	db     *gorm.DB
	mr     *miniredis.Miniredis
	events *recordingPublisher

	auth      *AuthService
	products  *ProductService
	suppliers *SupplierService
	inventory *InventoryService
	orders    *OrderService
	dashboard *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	conf := testutil.Config(t)
	conf.Storage.LocalDir = t.TempDir()
	db := testutil.NewDB(t)
	rds, mr := testutil.NewRedis(t)
	events := &recordingPublisher{}

	users := dao.NewUsers(db)
	productDAO := dao.NewProduct(db)
	supplierDAO := dao.NewSupplier(db)
	orderDAO := dao.NewOrder(db)

	storage, err := NewFileStorage(conf.Storage)
	require.NoError(t, err)

	return &testEnv{
		ctx:    context.Background(),
		conf:   conf,
		db:     db,
		mr:     mr,
		events: events,
		auth: &AuthService{
			Config:        conf,
			UsersDAO:      users,
			RefreshTokens: cache.NewRefreshTokenStorage(rds),
		},
		products: &ProductService{
			ProductDAO: productDAO,
			Storage:    storage,
		},
		suppliers: &SupplierService{SupplierDAO: supplierDAO},
		inventory: &InventoryService{
			DB:          db,
			SupplierDAO: supplierDAO,
			ProductDAO:  productDAO,
			DeliveryDAO: dao.NewDelivery(db),
			Events:      events,
		},
		orders: &OrderService{
			Config:       conf,
			DB:           db,
			OrderDAO:     orderDAO,
			ProductDAO:   productDAO,
			PayRecordDAO: dao.NewPayRecord(db),
			Events:       events,
		},
		dashboard: &DashboardService{
			Config:     conf,
			StatsDAO:   dao.NewStats(db),
			OrderDAO:   orderDAO,
			ProductDAO: productDAO,
		},
	}
}

func (e *testEnv) product(t *testing.T, name, price string, stock int) *models.Product {
	t.Helper()
	p := &models.Product{
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		IsActive:      true,
	}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

func (e *testEnv) supplier(t *testing.T, name string) *models.Supplier {
	t.Helper()
	s := &models.Supplier{Name: name, Cnpj: "12.345.678/0001-90"}
	require.NoError(t, e.db.Create(s).Error)
	return s
}

func (e *testEnv) stock(t *testing.T, id int64) int {
	t.Helper()
	var p models.Product
	require.NoError(t, e.db.First(&p, id).Error)
	return p.StockQuantity
}

func (e *testEnv) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

func (e *testEnv) deactivate(t *testing.T, id int64) {
	t.Helper()
	require.NoError(t, e.db.Model(&models.Product{}).Where("id = ?", id).Update("is_active", false).Error)
}
