package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"minishop/internal/models"
	"minishop/internal/services"
)

// Wire messages shown verbatim to the end user.
const (
	msgNoItems        = "No items provided"
	msgMissingChatID  = "Missing ORDER_CHAT_ID or user.id to send the order."
	msgOrderFailed    = "Failed to process order."
	msgInvalidPayload = "Invalid order payload"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /api/order
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var payload models.OrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidPayload})
		return
	}

	result, err := h.orderService.Submit(c.Request.Context(), payload)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoItems):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoItems})
	case errors.Is(err, services.ErrMissingChatID):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingChatID})
	default:
		slog.Error("failed to handle order", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgOrderFailed})
	}
}
