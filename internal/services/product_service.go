package services

import (
	"context"
	"errors"
	"fmt"

	"go-storefront/internal/models"
	"go-storefront/internal/platform/logger"
	"go-storefront/internal/repository"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type ProductService struct {
	productRepo repository.ProductRepository
	log         logger.Logger
}

func NewProductService(productRepo repository.ProductRepository, log logger.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		log:         log,
	}
}

// Get all products from the inventory
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.GetAllProducts(ctx)
	if err != nil {
		s.log.Errorf("Error listing products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	return products, nil
}

// Get product by ID - linear scan over the full list
func (s *ProductService) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	products, err := s.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
}

// CheckStock fails with ErrInsufficientStock when a cart line asks for more
// than is left, including products that already sold out.
func (s *ProductService) CheckStock(ctx context.Context, cart *models.Cart) error {
	if cart == nil {
		return &models.ValidationError{Field: "cart", Err: models.ErrNilArgument}
	}

	for _, line := range cart.Lines() {
		product, err := s.GetProductByID(ctx, line.Product.ID)
		if errors.Is(err, ErrProductNotFound) {
			return fmt.Errorf("product %d is sold out: %w", line.Product.ID, ErrInsufficientStock)
		}
		if err != nil {
			return err
		}
		if line.Quantity > product.Stock {
			return fmt.Errorf("product %d has %d left: %w", product.ID, product.Stock, ErrInsufficientStock)
		}
	}
	return nil
}

// UpdateProductQuantities removes each line's quantity from the product's
// stock. It stops at the first failure and does not undo earlier lines.
func (s *ProductService) UpdateProductQuantities(ctx context.Context, cart *models.Cart) error {
	if cart == nil {
		return &models.ValidationError{Field: "cart", Err: models.ErrNilArgument}
	}

	for _, line := range cart.Lines() {
		if err := s.productRepo.UpdateProductStocks(ctx, line.Product.ID, line.Quantity); err != nil {
			s.log.Errorf("Error updating stock for product %d: %v", line.Product.ID, err)
			return fmt.Errorf("could not update stock for product %d: %w", line.Product.ID, err)
		}
		s.log.Infof("Stock updated: ProductID=%d, Removed=%d", line.Product.ID, line.Quantity)
	}
	return nil
}
