package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"", RoleUser, true},
		{"user", RoleUser, true},
		{" Admin ", RoleAdmin, true},
		{"root", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRole(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderPaid, true},
		{OrderPending, OrderCanceled, true},
		{OrderPending, OrderShipped, false},
		{OrderPaid, OrderShipped, true},
		{OrderPaid, OrderCanceled, true},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCanceled, false},
		{OrderDelivered, OrderPending, false},
		{OrderCanceled, OrderPaid, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
	assert.True(t, OrderDelivered.IsTerminal())
	assert.True(t, OrderCanceled.IsTerminal())
	assert.False(t, OrderPaid.IsTerminal())
}

func TestParseOrderStatus(t *testing.T) {
	st, ok := ParseOrderStatus("shipped")
	assert.True(t, ok)
	assert.Equal(t, OrderShipped, st)

	_, ok = ParseOrderStatus("LOST")
	assert.False(t, ok)
}

func TestDeliveryCalculateTotal(t *testing.T) {
	d := Delivery{Items: []DeliveryItem{
		{Quantity: 5, Price: decimal.RequireFromString("2.50")},
		{Quantity: 3, Price: decimal.RequireFromString("0.99")},
	}}
	d.CalculateTotal()
	assert.Equal(t, "15.47", d.Total.StringFixed(2))
}

func TestMoneyIsJSONNumber(t *testing.T) {
	raw, err := json.Marshal(OrderItem{Quantity: 2, Price: decimal.RequireFromString("9.99")})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":9.99`)
}

func TestNormalizeLogin(t *testing.T) {
	assert.Equal(t, "ana@scoops.com", NormalizeLogin("  Ana@Scoops.COM "))
}
