package models

type Supplier struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name         string `gorm:"size:150;not null;column:name" json:"name"`
	Cnpj         string `gorm:"size:20;not null;column:cnpj" json:"cnpj"`
	ContactPhone string `gorm:"size:30;column:contact_phone" json:"contactPhone"`
	ContactEmail string `gorm:"size:150;column:contact_email" json:"contactEmail"`
}

func (Supplier) TableName() string {
	return "tb_suppliers"
}
