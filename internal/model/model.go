// Package model holds the persisted entities and their request profiles.
package model

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&Client{},
		&Supplier{},
		&Supply{},
		&Machine{},
		&Technician{},
		&Maintenance{},
		&Consumption{},
		&User{},
	}
}
