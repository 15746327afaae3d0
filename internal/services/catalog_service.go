package services

import (
	"sync"

	"github.com/shopspring/decimal"

	"minishop/internal/models"
)

// CatalogService holds the fixed product list. It is populated once at
// startup and read-only afterwards.
type CatalogService struct {
	mu       sync.RWMutex
	products map[int64]*models.Product
	order    []int64
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		products: make(map[int64]*models.Product),
	}
}

func (s *CatalogService) InitSampleData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	samples := []models.Product{
		{ID: 1, Name: "Café en grain", Description: "Blend maison torréfié", Price: decimal.RequireFromString("12.50")},
		{ID: 2, Name: "Thé matcha", Description: "Qualité cérémoniale", Price: decimal.RequireFromString("18.90")},
		{ID: 3, Name: "Chocolat noir 70%", Description: "Origine Pérou", Price: decimal.RequireFromString("7.80")},
		{ID: 4, Name: "Cookie artisanal", Description: "Chocolat & noisette", Price: decimal.RequireFromString("3.50")},
	}

	for i := range samples {
		product := samples[i]
		s.products[product.ID] = &product
		s.order = append(s.order, product.ID)
	}
}

// GetAll returns products in catalog order.
func (s *CatalogService) GetAll() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, *s.products[id])
	}

	return products
}

func (s *CatalogService) GetByID(id int64) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[id]
	if !exists {
		return models.Product{}, false
	}

	return *product, true
}
