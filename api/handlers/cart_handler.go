package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"minishop/internal/models"
	"minishop/internal/services"
)

type CartHandler struct {
	cartService  *services.CartService
	orderService *services.OrderService
}

func NewCartHandler(cartService *services.CartService, orderService *services.OrderService) *CartHandler {
	return &CartHandler{
		cartService:  cartService,
		orderService: orderService,
	}
}

// POST /api/cart
func (h *CartHandler) CreateCart(c *gin.Context) {
	cart := h.cartService.Create()

	c.JSON(http.StatusCreated, h.cartResponse(cart))
}

// GET /api/cart/:id
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	c.JSON(http.StatusOK, h.cartResponse(cart))
}

// POST /api/cart/:id/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.cartService.AddToCart(c.Param("id"), req.ProductID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.cartResponse(cart))
}

// PATCH /api/cart/:id/items/:product_id
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req models.ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.cartService.ChangeQuantity(c.Param("id"), productID, req.Delta)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.cartResponse(cart))
}

// POST /api/cart/:id/checkout
// Builds the order payload from the cart snapshot with a freshly computed
// total, runs the order pipeline and clears the cart only when delivery
// (or simulation) succeeded.
func (h *CartHandler) Checkout(c *gin.Context) {
	cartID := c.Param("id")

	cart, err := h.cartService.Get(cartID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	// An absent body means an anonymous checkout.
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidPayload})
		return
	}

	total, err := h.cartService.ComputeTotal(cartID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	payload := models.OrderPayload{
		User:  req.User,
		Items: cart.Lines,
		Total: total,
	}

	result, err := h.orderService.Submit(c.Request.Context(), payload)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	if err := h.cartService.Clear(cartID); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CartHandler) cartResponse(cart models.Cart) gin.H {
	total, _ := h.cartService.ComputeTotal(cart.ID)

	return gin.H{
		"data":  cart,
		"total": total,
	}
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
