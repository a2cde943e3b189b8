package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCanceled  OrderStatus = "CANCELED"
)

// orderTransitions lists the allowed next states; terminal states have none.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderPaid, OrderCanceled},
	OrderPaid:      {OrderShipped, OrderCanceled},
	OrderShipped:   {OrderDelivered},
	OrderDelivered: nil,
	OrderCanceled:  nil,
}

// ParseOrderStatus upper-cases s and checks it against the known statuses.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := orderTransitions[st]
	return st, ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// Order is created at checkout and afterwards only changed by admins.
type Order struct {
	ID               int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Moment           time.Time       `gorm:"not null;index:idx_orders_moment;column:moment" json:"moment"`
	Status           OrderStatus     `gorm:"size:20;not null;default:PENDING;index:idx_orders_status;column:status" json:"status"`
	Total            decimal.Decimal `gorm:"type:decimal(18,2);not null;column:total" json:"total"`
	ClientLogin      string          `gorm:"size:150;not null;index:idx_orders_client;column:client_login" json:"clientLogin"`
	ContactPhone     string          `gorm:"size:30;column:contact_phone" json:"contactPhone"`
	DeliveryAddress  string          `gorm:"size:255;column:delivery_address" json:"deliveryAddress"`
	InstagramReelUrl *string         `gorm:"size:512;column:instagram_reel_url" json:"instagramReelUrl"`
	TrackingUrl      *string         `gorm:"size:512;column:tracking_url" json:"trackingUrl"`
	Items            []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
}

func (Order) TableName() string {
	return "tb_orders"
}

// OrderItem keeps the unit price at purchase time, decoupled from Product.Price.
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Quantity  int             `gorm:"not null;column:quantity" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null;column:price" json:"price"`
	OrderID   int64           `gorm:"not null;index:idx_order_items_order;column:order_id" json:"-"`
	ProductID int64           `gorm:"not null;index:idx_order_items_product;column:product_id" json:"productId"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "tb_order_items"
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PayRecord stores the PIX charge issued for an order, at most one per order.
type PayRecord struct {
	ID        int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderID   int64           `gorm:"not null;uniqueIndex:idx_pay_records_order;column:order_id" json:"order_id"`
	TxID      string          `gorm:"size:35;not null;column:tx_id" json:"tx_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);not null;column:amount" json:"amount"`
	Payload   datatypes.JSON  `gorm:"column:payload" json:"payload"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PayRecord) TableName() string {
	return "tb_pay_records"
}
