package service

import (
	"Scoops/models"
	"Scoops/pkg/errorx"
	"Scoops/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderReq(items ...types.OrderItemRequest) *types.CreateOrderRequest {
	return &types.CreateOrderRequest{Address: "Rua A, 1", Phone: "11 99999-0000", Items: items}
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)
	sundae := env.product(t, "Sundae", "9.99", 10)

	order, err := env.orders.Create(env.ctx, "ana@scoops.com", orderReq(types.OrderItemRequest{ProductId: sundae.ID, Quantity: 2}))
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, "19.98", order.Total.StringFixed(2))
	assert.Equal(t, "ana@scoops.com", order.ClientLogin)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "9.99", order.Items[0].Price.StringFixed(2))
	assert.Equal(t, 8, env.stock(t, sundae.ID))
	assert.Equal(t, []string{types.EventOrderCreated}, env.events.Types())
}

func TestCreateOrder_PriceIsSnapshot(t *testing.T) {
	env := newTestEnv(t)
	sundae := env.product(t, "Sundae", "9.99", 10)

	order, err := env.orders.Create(env.ctx, "ana@scoops.com", orderReq(types.OrderItemRequest{ProductId: sundae.ID, Quantity: 1}))
	require.NoError(t, err)

	require.NoError(t, env.db.Model(&models.Product{}).Where("id = ?", sundae.ID).Update("price", "12.00").Error)

	got, err := env.orders.Get(env.ctx, order.ID, "ana@scoops.com", false)
	require.NoError(t, err)
	assert.Equal(t, "9.99", got.Items[0].Price.StringFixed(2))
	assert.Equal(t, "9.99", got.Total.StringFixed(2))
	require.NotNil(t, got.Items[0].Product)
	assert.Equal(t, "12.00", got.Items[0].Product.Price.StringFixed(2))
}

func TestCreateOrder_Rejections(t *testing.T) {
	env := newTestEnv(t)
	sundae := env.product(t, "Sundae", "9.99", 3)
	retired := env.product(t, "Retired", "1.00", 10)
	env.deactivate(t, retired.ID)

	tests := []struct {
		name  string
		items []types.OrderItemRequest
		msg   string
	}{
		{"no items", nil, "at least one item"},
		{"zero quantity", []types.OrderItemRequest{{ProductId: sundae.ID, Quantity: 0}}, "must be positive"},
		{"missing product", []types.OrderItemRequest{{ProductId: 777, Quantity: 1}}, "777"},
		{"inactive product", []types.OrderItemRequest{{ProductId: retired.ID, Quantity: 1}}, "not available"},
		{"insufficient stock", []types.OrderItemRequest{{ProductId: sundae.ID, Quantity: 4}}, "insufficient stock"},
		{
			"second item fails after first reserved",
			[]types.OrderItemRequest{{ProductId: sundae.ID, Quantity: 2}, {ProductId: 778, Quantity: 1}},
			"778",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.orders.Create(env.ctx, "ana@scoops.com", orderReq(tt.items...))
			require.Error(t, err)
			assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
			assert.True(t, strings.Contains(err.Error(), tt.msg), err.Error())
		})
	}

	assert.Equal(t, 3, env.stock(t, sundae.ID))
	assert.Zero(t, env.count(t, &models.Order{}))
	assert.Zero(t, env.count(t, &models.OrderItem{}))
}

func TestGetOrder_Ownership(t *testing.T) {
	env := newTestEnv(t)
	sundae := env.product(t, "Sundae", "9.99", 10)
	order, err := env.orders.Create(env.ctx, "ana@scoops.com", orderReq(types.OrderItemRequest{ProductId: sundae.ID, Quantity: 1}))
	require.NoError(t, err)

	_, err = env.orders.Get(env.ctx, order.ID, "ana@scoops.com", false)
	assert.NoError(t, err)

	_, err = env.orders.Get(env.ctx, order.ID, "admin@scoops.com", true)
	assert.NoError(t, err)

	_, err = env.orders.Get(env.ctx, order.ID, "bob@scoops.com", false)
	assert.Equal(t, errorx.KindForbidden, errorx.KindOf(err))

	_, err = env.orders.Get(env.ctx, order.ID+100, "ana@scoops.com", true)
	assert.Equal(t, errorx.KindNotFound, errorx.KindOf(err))
}

func TestListOrders(t *testing.T) {
	env := newTestEnv(t)
	sundae := env.product(t, "Sundae", "9.99", 10)
	item := types.OrderItemRequest{ProductId: sundae.ID, Quantity: 1}

	first, err := env.orders.Create(env.ctx, "ana@scoops.com", orderReq(item))
	require.NoError(t, err)
	_, err = env.orders.Create(env.ctx, "bob@scoops.com", orderReq(item))
	require.NoError(t, err)
	second, err := env.orders.Create(env.ctx, "ana@scoops.com", orderReq(item))
	require.NoError(t, err)

	mine, err := env.orders.ListForClient(env.ctx, "ana@scoops.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)
	require.Len(t, mine[0].Items, 1)
	assert.NotNil(t, mine[0].Items[0].Product)

	all, err := env.orders.ListAll(env.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newTestEnv(t)
	sundae := env.product(t, "Sundae", "9.99", 10)

	newOrder := func(t *testing.T) *models.Order {
		order, err := env.orders.Create(env.ctx, "ana@scoops.com", orderReq(types.OrderItemRequest{ProductId: sundae.ID, Quantity: 1}))
		require.NoError(t, err)
		return order
	}
	statusOf := func(t *testing.T, id int64) models.OrderStatus {
		var o models.Order
		require.NoError(t, env.db.First(&o, id).Error)
		return o.Status
	}

	t.Run("happy path is case insensitive", func(t *testing.T) {
		order := newOrder(t)
		for _, s := range []string{"paid", "Shipped", "DELIVERED"} {
			require.NoError(t, env.orders.UpdateStatus(env.ctx, order.ID, s))
		}
		assert.Equal(t, models.OrderDelivered, statusOf(t, order.ID))
	})

	t.Run("terminal state rejects changes", func(t *testing.T) {
		order := newOrder(t)
		require.NoError(t, env.orders.UpdateStatus(env.ctx, order.ID, "CANCELED"))
		err := env.orders.UpdateStatus(env.ctx, order.ID, "PAID")
		assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
		assert.Equal(t, models.OrderCanceled, statusOf(t, order.ID))
	})

	t.Run("skipping a step is invalid", func(t *testing.T) {
		order := newOrder(t)
		err := env.orders.UpdateStatus(env.ctx, order.ID, "SHIPPED")
		assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
		assert.Equal(t, models.OrderPending, statusOf(t, order.ID))
	})

	t.Run("unknown status", func(t *testing.T) {
		order := newOrder(t)
		err := env.orders.UpdateStatus(env.ctx, order.ID, "LOST")
		assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		order := newOrder(t)
		assert.NoError(t, env.orders.UpdateStatus(env.ctx, order.ID, "pending"))
		assert.Equal(t, models.OrderPending, statusOf(t, order.ID))
	})

	t.Run("missing order", func(t *testing.T) {
		err := env.orders.UpdateStatus(env.ctx, 4242, "PAID")
		assert.Equal(t, errorx.KindNotFound, errorx.KindOf(err))
	})
}

func TestUpdateOrderStatus_CancelRestoresStock(t *testing.T) {
	env := newTestEnv(t)
	sundae := env.product(t, "Sundae", "9.99", 10)

	order, err := env.orders.Create(env.ctx, "ana@scoops.com", orderReq(types.OrderItemRequest{ProductId: sundae.ID, Quantity: 4}))
	require.NoError(t, err)
	require.Equal(t, 6, env.stock(t, sundae.ID))

	require.NoError(t, env.orders.UpdateStatus(env.ctx, order.ID, "PAID"))
	require.NoError(t, env.orders.UpdateStatus(env.ctx, order.ID, "CANCELED"))

	assert.Equal(t, 10, env.stock(t, sundae.ID))
	assert.Contains(t, env.events.Types(), types.EventOrderStatusChanged)
}

func TestUpdateOrderLinks_Partial(t *testing.T) {
	env := newTestEnv(t)
	sundae := env.product(t, "Sundae", "9.99", 10)
	order, err := env.orders.Create(env.ctx, "ana@scoops.com", orderReq(types.OrderItemRequest{ProductId: sundae.ID, Quantity: 1}))
	require.NoError(t, err)

	reel := "https://instagram.com/reel/abc"
	updated, err := env.orders.UpdateLinks(env.ctx, order.ID, &types.UpdateOrderLinksRequest{InstagramReelUrl: &reel})
	require.NoError(t, err)
	require.NotNil(t, updated.InstagramReelUrl)
	assert.Equal(t, reel, *updated.InstagramReelUrl)
	assert.Nil(t, updated.TrackingUrl)

	tracking := "https://track.example/1"
	updated, err = env.orders.UpdateLinks(env.ctx, order.ID, &types.UpdateOrderLinksRequest{TrackingUrl: &tracking})
	require.NoError(t, err)
	require.NotNil(t, updated.InstagramReelUrl)
	assert.Equal(t, reel, *updated.InstagramReelUrl)
	require.NotNil(t, updated.TrackingUrl)
	assert.Equal(t, tracking, *updated.TrackingUrl)

	_, err = env.orders.UpdateLinks(env.ctx, order.ID+1, &types.UpdateOrderLinksRequest{TrackingUrl: &tracking})
	assert.Equal(t, errorx.KindNotFound, errorx.KindOf(err))
}

func TestGeneratePix(t *testing.T) {
	env := newTestEnv(t)
	sundae := env.product(t, "Sundae", "9.99", 10)
	order, err := env.orders.Create(env.ctx, "ana@scoops.com", orderReq(types.OrderItemRequest{ProductId: sundae.ID, Quantity: 2}))
	require.NoError(t, err)

	first, err := env.orders.GeneratePix(env.ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.Code, "000201"))
	assert.Contains(t, first.Code, "540519.98")
	assert.Equal(t, "19.98", first.Total.StringFixed(2))

	second, err := env.orders.GeneratePix(env.ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, int64(1), env.count(t, &models.PayRecord{}))

	_, err = env.orders.GeneratePix(env.ctx, 9999)
	assert.Equal(t, errorx.KindNotFound, errorx.KindOf(err))
}
