package types

type CreateSupplierRequest struct {
	Name         string `json:"name" binding:"required"`
	Cnpj         string `json:"cnpj" binding:"required"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
}
