package types

import "github.com/shopspring/decimal"

type DashboardStats struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalOrders   int64           `json:"totalOrders"`
	LowStockCount int64           `json:"lowStockCount"`
	PendingOrders int64           `json:"pendingOrders"`
	TopProducts   []TopProduct    `json:"topProducts"`
}

type TopProduct struct {
	Name         string `json:"name"`
	QuantitySold int64  `json:"quantitySold"`
}
