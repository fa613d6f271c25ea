package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-storefront/internal/models"
	"go-storefront/internal/repository"
)

const (
	orderCollectionName   = "orders"
	counterCollectionName = "counters"
	orderCounterID        = "orders"
)

type OrderRepository struct {
	orders   *mongo.Collection
	counters *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		orders:   db.Collection(orderCollectionName),
		counters: db.Collection(counterCollectionName),
	}
}

type counter struct {
	ID  string `bson:"_id"`
	Seq int    `bson:"seq"`
}

func (r *OrderRepository) nextID(ctx context.Context) (int, error) {
	var c counter
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": orderCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate order id: %w", err)
	}
	return c.Seq, nil
}

func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	if order == nil {
		return errors.New("cannot save nil order")
	}

	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	order.ID = id

	if _, err := r.orders.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	err := r.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("order %d: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return &order, nil
}
