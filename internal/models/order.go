package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Identity is supplied by the Telegram WebApp bridge at page load.
// A nil Identity means the shop runs outside Telegram (anonymous).
type Identity struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// OrderPayload is the wire body of POST /api/order. Total defaults to zero
// when the client omits it.
type OrderPayload struct {
	User  *Identity       `json:"user"`
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

const (
	OrderStatusSent    = "sent"
	OrderStatusSkipped = "skipped"
)

type OrderResult struct {
	Status           string          `json:"status"`
	Message          string          `json:"message,omitempty"`
	Preview          string          `json:"preview,omitempty"`
	TelegramResponse json.RawMessage `json:"telegramResponse,omitempty"`
}

type CheckoutRequest struct {
	User *Identity `json:"user"`
}
