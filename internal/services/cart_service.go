package services

import (
	"context"
	"fmt"

	"go-storefront/internal/models"
	"go-storefront/internal/platform/logger"
	"go-storefront/internal/session"
)

type CartService struct {
	store    session.CartStore
	products *ProductService
	log      logger.Logger
}

func NewCartService(store session.CartStore, products *ProductService, log logger.Logger) *CartService {
	return &CartService{
		store:    store,
		products: products,
		log:      log,
	}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		s.log.Errorf("Error getting cart for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) SaveCart(ctx context.Context, sessionID string, cart *models.Cart) error {
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		s.log.Errorf("Error saving cart for session %s: %v", sessionID, err)
		return fmt.Errorf("could not save cart: %w", err)
	}
	return nil
}

// AddToCart adds quantity of a product to the session's cart. The line may
// never hold more than the product's current stock.
func (s *CartService) AddToCart(ctx context.Context, sessionID string, productID, quantity int) (*models.Cart, error) {
	s.log.Infof("Adding item to cart: Session=%s, ProductID=%d, Quantity=%d", sessionID, productID, quantity)

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	inCart := 0
	for _, line := range cart.Lines() {
		if line.Product.ID == productID {
			inCart = line.Quantity
		}
	}
	if inCart+quantity > product.Stock {
		return nil, fmt.Errorf("product %d has %d left: %w", productID, product.Stock, ErrInsufficientStock)
	}

	if err := cart.AddItem(product, quantity); err != nil {
		return nil, fmt.Errorf("could not add item to cart: %w", err)
	}
	if err := s.SaveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart is a no-op when the product is not in the cart.
func (s *CartService) RemoveFromCart(ctx context.Context, sessionID string, productID int) (*models.Cart, error) {
	s.log.Infof("Removing item from cart: Session=%s, ProductID=%d", sessionID, productID)

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	product, found := cart.FindProduct(productID)
	if !found {
		return cart, nil
	}
	cart.RemoveLine(product)

	if err := s.SaveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.log.Errorf("Error deleting cart for session %s: %v", sessionID, err)
		return fmt.Errorf("could not clear cart: %w", err)
	}
	return nil
}
