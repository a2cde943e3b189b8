package types

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	Address string             `json:"address"`
	Phone   string             `json:"phone"`
	Items   []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductId int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderLinksRequest: absent or null fields keep their stored value.
type UpdateOrderLinksRequest struct {
	InstagramReelUrl *string `json:"instagramReelUrl"`
	TrackingUrl      *string `json:"trackingUrl"`
}

type PixResponse struct {
	Code  string          `json:"code"`
	Total decimal.Decimal `json:"total"`
}
