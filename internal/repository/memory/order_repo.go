package memory

import (
	"context"
	"fmt"
	"sync"

	"go-storefront/internal/models"
	"go-storefront/internal/repository"
)

type OrderRepository struct {
	mu     sync.RWMutex
	orders map[int]*models.Order
	nextID int
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[int]*models.Order),
		nextID: 1,
	}
}

func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	if order == nil {
		return fmt.Errorf("cannot save nil order")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++

	stored := *order
	stored.Lines = append([]models.CartLine(nil), order.Lines...)
	r.orders[order.ID] = &stored
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[id]
	if !exists {
		return nil, fmt.Errorf("order %d: %w", id, repository.ErrNotFound)
	}
	copied := *order
	return &copied, nil
}
