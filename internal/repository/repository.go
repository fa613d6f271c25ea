package repository

import (
	"context"
	"errors"

	"go-storefront/internal/models"
)

var ErrNotFound = errors.New("entity not found")

type ProductRepository interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	// UpdateProductStocks removes quantity from the product's stock. A
	// product left with no stock is dropped from the inventory.
	UpdateProductStocks(ctx context.Context, productID, quantity int) error
}

type OrderRepository interface {
	// Save assigns the order its ID.
	Save(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id int) (*models.Order, error)
}
