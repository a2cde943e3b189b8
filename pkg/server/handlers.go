package server

import (
	"Scoops/handler"
)

type Handlers struct {
	Auth      *handler.Auth
	Product   *handler.Product
	Supplier  *handler.Supplier
	Delivery  *handler.Delivery
	Order     *handler.Order
	Dashboard *handler.Dashboard
}
