package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-storefront/internal/models"
	"go-storefront/internal/repository"
)

const productCollectionName = "products"

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection(productCollectionName),
	}
}

// Seed inserts products whose IDs are not stored yet.
func (r *ProductRepository) Seed(ctx context.Context, products []models.Product) error {
	for _, p := range products {
		_, err := r.collection.UpdateOne(ctx,
			bson.M{"_id": p.ID},
			bson.M{"$setOnInsert": bson.M{
				"name":        p.Name,
				"description": p.Description,
				"details":     p.Details,
				"price":       p.Price,
				"stock":       p.Stock,
			}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %d: %w", p.ID, err)
		}
	}
	return nil
}

func (r *ProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) UpdateProductStocks(ctx context.Context, productID, quantity int) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": productID},
		bson.M{"$inc": bson.M{"stock": -quantity}},
	)
	if err != nil {
		return fmt.Errorf("failed to update stock for product %d: %w", productID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product %d: %w", productID, repository.ErrNotFound)
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": productID, "stock": bson.M{"$lte": 0}})
	if err != nil {
		return fmt.Errorf("failed to remove sold out product %d: %w", productID, err)
	}
	return nil
}
