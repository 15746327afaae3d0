package models

import "github.com/shopspring/decimal"

// Product is defined at startup and never mutated afterwards.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}
