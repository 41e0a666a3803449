package models

type Cashier struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
}

func (c Cashier) FullName() string {
	return c.FirstName + " " + c.LastName
}
