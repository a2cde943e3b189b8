package types

import "github.com/shopspring/decimal"

// CreateProductForm is the multipart form; the optional image travels as "file".
type CreateProductForm struct {
	Name          string `form:"name" binding:"required,max=150"`
	Description   string `form:"description" binding:"max=500"`
	Price         string `form:"price" binding:"required"`
	Category      string `form:"category"`
	StockQuantity int    `form:"stockQuantity"`
}

type CreateProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	Category      string
	StockQuantity int
}

// UpdateProductRequest is a partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=150"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	IsActive    *bool            `json:"isActive"`
}

type PageQuery struct {
	Page *int `form:"page"`
	Size *int `form:"size"`
}
