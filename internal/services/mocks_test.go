package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go-storefront/internal/models"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProductStocks(ctx context.Context, productID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type MockOrderStats struct {
	mock.Mock
}

func (m *MockOrderStats) OrderPlaced(lines int, total float64) {
	m.Called(lines, total)
}

func (m *MockOrderStats) OrderFailed(reason string) {
	m.Called(reason)
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Echo Dot", Price: 10, Stock: 3},
		{ID: 2, Name: "Anker cable", Price: 5, Stock: 20},
	}
}
