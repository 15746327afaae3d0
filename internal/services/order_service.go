package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"minishop/internal/models"
	"minishop/internal/telegram"
)

var (
	ErrNoItems       = errors.New("no items provided")
	ErrMissingChatID = errors.New("missing order chat id and user id")
)

// OrderService validates an order payload, formats the notification message
// and delivers it through the Telegram relay.
type OrderService struct {
	relay       *telegram.Client
	orderChatID string
}

func NewOrderService(relay *telegram.Client, orderChatID string) *OrderService {
	return &OrderService{
		relay:       relay,
		orderChatID: orderChatID,
	}
}

// Submit runs the order pipeline. Validation failures return ErrNoItems or
// ErrMissingChatID; relay failures are wrapped and carry the upstream
// status and body.
func (s *OrderService) Submit(ctx context.Context, payload models.OrderPayload) (*models.OrderResult, error) {
	if len(payload.Items) == 0 {
		return nil, ErrNoItems
	}

	message := BuildOrderMessage(payload)

	if !s.relay.Configured() {
		return &models.OrderResult{
			Status:  models.OrderStatusSkipped,
			Message: "BOT_TOKEN not set. Order message not sent to Telegram.",
			Preview: message,
		}, nil
	}

	chatID := s.orderChatID
	if chatID == "" && payload.User != nil && payload.User.ID != 0 {
		chatID = strconv.FormatInt(payload.User.ID, 10)
	}
	if chatID == "" {
		return nil, ErrMissingChatID
	}

	resp, err := s.relay.SendMessage(ctx, chatID, message)
	if err != nil {
		return nil, fmt.Errorf("send order message: %w", err)
	}

	return &models.OrderResult{
		Status:           models.OrderStatusSent,
		TelegramResponse: resp,
	}, nil
}

// BuildOrderMessage renders the human-readable order notification: header,
// client line, one line per item and a total line.
func BuildOrderMessage(payload models.OrderPayload) string {
	client := displayName(payload.User)
	if payload.User != nil && payload.User.Username != "" {
		client = client + " · @" + payload.User.Username
	}

	lines := []string{"🛍️ Nouvelle commande", client, ""}
	for _, item := range payload.Items {
		lines = append(lines, fmt.Sprintf("• %s x%d — %s€", item.Name, item.Quantity, item.Price.StringFixed(2)))
	}
	lines = append(lines, "", "Total: "+payload.Total.StringFixed(2)+"€")

	return strings.Join(lines, "\n")
}

func displayName(user *models.Identity) string {
	if user == nil {
		return "Client"
	}

	var parts []string
	if user.FirstName != "" {
		parts = append(parts, user.FirstName)
	}
	if user.LastName != "" {
		parts = append(parts, user.LastName)
	}

	name := strings.Join(parts, " ")
	if name == "" {
		return "Client"
	}

	return name
}
