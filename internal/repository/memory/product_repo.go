package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go-storefront/internal/models"
	"go-storefront/internal/repository"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products map[int]*models.Product
}

func NewProductRepository(products ...models.Product) *ProductRepository {
	r := &ProductRepository{
		products: make(map[int]*models.Product, len(products)),
	}
	for i := range products {
		p := products[i]
		r.products[p.ID] = &p
	}
	return r
}

// SeedProducts is the starting inventory of the store.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Echo Dot", Description: "(2nd Generation) - Black", Price: 92.50, Stock: 10},
		{ID: 2, Name: "Anker 3ft / 0.9m Nylon Braided", Description: "Tangle-Free Micro USB Cable", Price: 9.99, Stock: 20},
		{ID: 3, Name: "JVC HAFX8R Headphone", Description: "Riptidz, In-Ear", Price: 69.99, Stock: 30},
		{ID: 4, Name: "VTech CS6114 DECT 6.0", Description: "Cordless Phone", Price: 32.50, Stock: 40},
		{ID: 5, Name: "NOKIA OEM BL-5J", Description: "Cell Phone", Price: 895.00, Stock: 50},
	}
}

// GetAllProducts returns copies ordered by ID.
func (r *ProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *ProductRepository) UpdateProductStocks(ctx context.Context, productID, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, exists := r.products[productID]
	if !exists {
		return fmt.Errorf("product %d: %w", productID, repository.ErrNotFound)
	}

	product.Stock -= quantity
	if product.Stock <= 0 {
		delete(r.products, productID)
	}
	return nil
}
