package models

import "github.com/shopspring/decimal"

type Product struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"not null" json:"productName"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Brand      string          `gorm:"not null" json:"brand"`
	CategoryID uint            `gorm:"index;not null" json:"categoryId"`
	Category   *Category       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
}
