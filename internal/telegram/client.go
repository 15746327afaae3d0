package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client sends messages through the Telegram Bot API.
type Client struct {
	apiBase string
	token   string
	client  *http.Client
}

func NewClient(apiBase, token string, timeout time.Duration) *Client {
	return &Client{
		apiBase: apiBase,
		token:   token,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether a bot token is set. Without one, orders are
// simulated instead of delivered.
func (c *Client) Configured() bool {
	return c.token != ""
}

// APIError is a non-2xx answer from the Bot API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error: %d - %s", e.StatusCode, e.Body)
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage posts text to chatID and returns the API's raw JSON answer.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) (json.RawMessage, error) {
	payload := sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal sendMessage request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiBase, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call telegram API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read telegram response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return json.RawMessage(data), nil
}
