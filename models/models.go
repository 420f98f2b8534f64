package models

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Restaurant{},
		&Menu{},
		&Reservation{},
		&Order{},
		&OrderItem{},
	}
}
