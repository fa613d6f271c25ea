package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-storefront/internal/models"
	"go-storefront/internal/platform/logger"
)

func TestProductService_GetAllProducts(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, logger.NewNop())
	repo.On("GetAllProducts", mock.Anything).Return(sampleProducts(), nil).Once()

	products, err := svc.GetAllProducts(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 2)
	repo.AssertExpectations(t)
}

func TestProductService_GetAllProducts_RepositoryError(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, logger.NewNop())
	repoErr := errors.New("connection refused")
	repo.On("GetAllProducts", mock.Anything).Return(nil, repoErr).Once()

	_, err := svc.GetAllProducts(context.Background())

	assert.ErrorIs(t, err, repoErr)
}

func TestProductService_GetProductByID(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, logger.NewNop())
	repo.On("GetAllProducts", mock.Anything).Return(sampleProducts(), nil)

	product, err := svc.GetProductByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Anker cable", product.Name)

	product, err = svc.GetProductByID(context.Background(), 7)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_UpdateProductQuantities(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, logger.NewNop())

	cart := models.NewCart()
	products := sampleProducts()
	require.NoError(t, cart.AddItem(&products[0], 2))
	require.NoError(t, cart.AddItem(&products[1], 1))

	repo.On("UpdateProductStocks", mock.Anything, 1, 2).Return(nil).Once()
	repo.On("UpdateProductStocks", mock.Anything, 2, 1).Return(nil).Once()

	err := svc.UpdateProductQuantities(context.Background(), cart)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProductService_UpdateProductQuantities_NilCart(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, logger.NewNop())

	err := svc.UpdateProductQuantities(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNilArgument)
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "cart", verr.Field)
	repo.AssertNotCalled(t, "UpdateProductStocks", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateProductQuantities_StopsAtFirstFailure(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, logger.NewNop())

	cart := models.NewCart()
	products := sampleProducts()
	require.NoError(t, cart.AddItem(&products[0], 2))
	require.NoError(t, cart.AddItem(&products[1], 1))

	repoErr := errors.New("write failed")
	repo.On("UpdateProductStocks", mock.Anything, 1, 2).Return(repoErr).Once()

	err := svc.UpdateProductQuantities(context.Background(), cart)

	assert.ErrorIs(t, err, repoErr)
	repo.AssertNotCalled(t, "UpdateProductStocks", mock.Anything, 2, 1)
}

func TestProductService_CheckStock(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, logger.NewNop())
	repo.On("GetAllProducts", mock.Anything).Return(sampleProducts(), nil)
	products := sampleProducts()

	fits := models.NewCart()
	require.NoError(t, fits.AddItem(&products[0], 3))
	assert.NoError(t, svc.CheckStock(context.Background(), fits))

	tooMany := models.NewCart()
	require.NoError(t, tooMany.AddItem(&products[0], 4))
	assert.ErrorIs(t, svc.CheckStock(context.Background(), tooMany), ErrInsufficientStock)

	soldOut := models.NewCart()
	require.NoError(t, soldOut.AddItem(&models.Product{ID: 9, Name: "Gone"}, 1))
	assert.ErrorIs(t, svc.CheckStock(context.Background(), soldOut), ErrInsufficientStock)

	assert.ErrorIs(t, svc.CheckStock(context.Background(), nil), models.ErrNilArgument)
}
