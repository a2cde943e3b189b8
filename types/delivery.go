package types

import "github.com/shopspring/decimal"

type RegisterDeliveryRequest struct {
	SupplierId int64                 `json:"supplierId" binding:"required"`
	Items      []DeliveryItemRequest `json:"items"`
}

type DeliveryItemRequest struct {
	ProductId int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type RegisterDeliveryResponse struct {
	Message    string          `json:"message"`
	DeliveryId int64           `json:"deliveryId"`
	Total      decimal.Decimal `json:"total"`
}
