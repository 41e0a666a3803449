package models

// All lists every entity in dependency order, the order AutoMigrate and the
// seeder rely on.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Product{},
		&Cashier{},
		&Order{},
		&OrderProduct{},
	}
}
