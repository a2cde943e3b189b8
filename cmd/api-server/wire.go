//go:build wireinject
// +build wireinject

package main

import (
	"Scoops/config"
	"Scoops/dao"
	"Scoops/handler"
	"Scoops/pkg/client"
	"Scoops/pkg/database"
	"Scoops/pkg/server"
	"Scoops/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Supplier), "*"),
		wire.Struct(new(handler.Delivery), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Dashboard), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil, nil
}
