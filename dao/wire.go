//go:build wireinject

package dao

import (
	"Scoops/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewProduct,
	NewSupplier,
	NewDelivery,
	NewOrder,
	NewPayRecord,
	NewStats,
	cache.NewRefreshTokenStorage,
)
