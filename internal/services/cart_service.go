package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"minishop/internal/models"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrProductNotFound = errors.New("product not found")
)

// CartService keeps every open cart in memory, keyed by cart id. Carts are
// never persisted; a server restart drops them all.
type CartService struct {
	mu      sync.RWMutex
	carts   map[string]*models.Cart
	catalog *CatalogService
}

func NewCartService(catalog *CatalogService) *CartService {
	return &CartService{
		carts:   make(map[string]*models.Cart),
		catalog: catalog,
	}
}

func (s *CartService) Create() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cart := &models.Cart{
		ID:        uuid.NewString(),
		Lines:     []models.CartLine{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.carts[cart.ID] = cart

	return snapshot(cart)
}

func (s *CartService) Get(cartID string) (models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, exists := s.carts[cartID]
	if !exists {
		return models.Cart{}, ErrCartNotFound
	}

	return snapshot(cart), nil
}

// AddToCart increments the line for productID, creating it with quantity 1
// from the catalog snapshot when absent. Unknown product ids are rejected.
func (s *CartService) AddToCart(cartID string, productID int64) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[cartID]
	if !exists {
		return models.Cart{}, ErrCartNotFound
	}

	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			cart.Lines[i].Quantity++
			cart.UpdatedAt = time.Now()
			return snapshot(cart), nil
		}
	}

	product, exists := s.catalog.GetByID(productID)
	if !exists {
		return models.Cart{}, ErrProductNotFound
	}

	cart.Lines = append(cart.Lines, models.CartLine{
		ProductID:   product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    1,
	})
	cart.UpdatedAt = time.Now()

	return snapshot(cart), nil
}

// ChangeQuantity adds delta to the line for productID. A missing line or a
// zero delta leaves the cart untouched; a resulting quantity of zero or
// below removes the line.
func (s *CartService) ChangeQuantity(cartID string, productID int64, delta int) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[cartID]
	if !exists {
		return models.Cart{}, ErrCartNotFound
	}

	if delta == 0 {
		return snapshot(cart), nil
	}

	for i := range cart.Lines {
		if cart.Lines[i].ProductID != productID {
			continue
		}

		cart.Lines[i].Quantity += delta
		if cart.Lines[i].Quantity <= 0 {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
		}
		cart.UpdatedAt = time.Now()
		break
	}

	return snapshot(cart), nil
}

func (s *CartService) ComputeTotal(cartID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, exists := s.carts[cartID]
	if !exists {
		return decimal.Zero, ErrCartNotFound
	}

	return sumLines(cart.Lines), nil
}

func (s *CartService) Clear(cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[cartID]
	if !exists {
		return ErrCartNotFound
	}

	cart.Lines = []models.CartLine{}
	cart.UpdatedAt = time.Now()

	return nil
}

func sumLines(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// snapshot copies the cart so callers never share the slice under mutation.
func snapshot(cart *models.Cart) models.Cart {
	copied := *cart
	copied.Lines = make([]models.CartLine, len(cart.Lines))
	copy(copied.Lines, cart.Lines)
	return copied
}
