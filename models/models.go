package models

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Item{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
	}
}
