package service

import (
	"Scoops/config"

	"github.com/google/wire"
)

func ProvideFileStorage(conf *config.Config) (IFileStorage, error) {
	return NewFileStorage(conf.Storage)
}

func ProvideEventPublisher(conf *config.Config) (IEventPublisher, func(), error) {
	return NewEventPublisher(conf.RocketMQ)
}

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(SupplierService), "*"),
	wire.Bind(new(ISupplierService), new(*SupplierService)),

	wire.Struct(new(InventoryService), "*"),
	wire.Bind(new(IInventoryService), new(*InventoryService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(DashboardService), "*"),
	wire.Bind(new(IDashboardService), new(*DashboardService)),

	ProvideFileStorage,
	ProvideEventPublisher,
)
