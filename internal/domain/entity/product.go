package entity

import "github.com/shopspring/decimal"

// Product producto de la carta que se vende en caja.
type Product struct {
	ID           string
	Name         string
	CategoryID   string
	CategoryName string
	Price        decimal.Decimal
	ImageURL     string
}
