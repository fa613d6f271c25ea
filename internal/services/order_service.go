package services

import (
	"context"
	"fmt"
	"time"

	"go-storefront/internal/models"
	"go-storefront/internal/platform/logger"
	"go-storefront/internal/repository"
)

// OrderStats receives checkout outcomes.
type OrderStats interface {
	OrderPlaced(lines int, total float64)
	OrderFailed(reason string)
}

type nopStats struct{}

func (nopStats) OrderPlaced(int, float64) {}
func (nopStats) OrderFailed(string)       {}

type OrderService struct {
	orderRepo repository.OrderRepository
	products  *ProductService
	log       logger.Logger
	stats     OrderStats
	now       func() time.Time
}

func NewOrderService(orderRepo repository.OrderRepository, products *ProductService, log logger.Logger, stats OrderStats) *OrderService {
	if stats == nil {
		stats = nopStats{}
	}
	return &OrderService{
		orderRepo: orderRepo,
		products:  products,
		log:       log,
		stats:     stats,
		now:       time.Now,
	}
}

// SaveOrder records the order for the cart's lines, takes the ordered
// quantities out of stock and empties the cart. Nothing is saved when a
// line no longer fits the stock. Stock updates are not rolled back when one
// of them fails after the order was saved.
func (s *OrderService) SaveOrder(ctx context.Context, order *models.Order, cart *models.Cart) error {
	if order == nil {
		return &models.ValidationError{Field: "order", Err: models.ErrNilArgument}
	}
	if cart == nil {
		return &models.ValidationError{Field: "cart", Err: models.ErrNilArgument}
	}
	if cart.IsEmpty() {
		s.stats.OrderFailed("empty_cart")
		return models.ErrEmptyCart
	}

	if err := s.products.CheckStock(ctx, cart); err != nil {
		s.log.Warnf("Checkout rejected for %s: %v", order.Name, err)
		s.stats.OrderFailed("stock")
		return err
	}

	order.Lines = make([]models.CartLine, 0, cart.Len())
	for _, line := range cart.Lines() {
		product := *line.Product
		order.Lines = append(order.Lines, models.CartLine{
			OrderLineID: line.OrderLineID,
			Product:     &product,
			Quantity:    line.Quantity,
		})
	}
	order.Date = s.now().UTC()

	if err := s.orderRepo.Save(ctx, order); err != nil {
		s.log.Errorf("Error saving order for %s: %v", order.Name, err)
		s.stats.OrderFailed("save")
		return fmt.Errorf("could not save order: %w", err)
	}
	s.log.Infof("Order saved: OrderID=%d, Lines=%d, Total=%.2f", order.ID, len(order.Lines), order.Total())

	if err := s.products.UpdateProductQuantities(ctx, cart); err != nil {
		s.stats.OrderFailed("stock")
		return fmt.Errorf("order %d saved but stock update failed: %w", order.ID, err)
	}

	cart.Clear()
	s.stats.OrderPlaced(len(order.Lines), order.Total())
	return nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve order: %w", err)
	}
	return order, nil
}
