package config

type Inventory struct {
	LowStockThreshold int `json:"low_stock_threshold" yaml:"low_stock_threshold"`
	TopProducts       int `json:"top_products" yaml:"top_products"`
}

// Pix describes the merchant embedded in generated payment codes.
type Pix struct {
	Key          string `json:"key" yaml:"key"`
	MerchantName string `json:"merchant_name" yaml:"merchant_name"`
	City         string `json:"city" yaml:"city"`
	Salt         string `json:"-" yaml:"salt"`
}

type Seed struct {
	AdminEmail    string `json:"admin_email" yaml:"admin_email"`
	AdminPassword string `json:"-" yaml:"admin_password"`
	AdminName     string `json:"admin_name" yaml:"admin_name"`
}
