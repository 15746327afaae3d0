package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine holds a snapshot of the product taken when it was first added,
// so a catalog change never rewrites lines already in a cart.
type CartLine struct {
	ProductID   int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Cart lives in memory only; restarting the server or reloading the page
// (the browser keeps just the cart id) abandons it.
type Cart struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// Delta must be a nonzero integer, typically +1 or -1.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}
