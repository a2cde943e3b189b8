package models

// All lists every table for migrations, parents first.
func All() []any {
	return []any{
		&Users{},
		&Product{},
		&Supplier{},
		&Delivery{},
		&DeliveryItem{},
		&Order{},
		&OrderItem{},
		&PayRecord{},
	}
}
