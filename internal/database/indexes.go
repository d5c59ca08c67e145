// internal/database/indexes.go
package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes provisions the index set the query pipelines depend on.
// Creation is idempotent: an index that already exists with the same
// definition is left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	collections := []struct {
		name   string
		models []mongo.IndexModel
	}{
		{
			name: "products",
			models: []mongo.IndexModel{
				{
					Keys: bson.D{
						{Key: "name", Value: "text"},
						{Key: "description", Value: "text"},
						{Key: "brand", Value: "text"},
						{Key: "category", Value: "text"},
					},
					Options: options.Index().
						SetName("text_search_index").
						SetWeights(bson.D{
							{Key: "name", Value: 10},
							{Key: "brand", Value: 5},
							{Key: "category", Value: 3},
							{Key: "description", Value: 1},
						}),
				},
				{
					Keys:    bson.D{{Key: "price", Value: 1}, {Key: "category", Value: 1}},
					Options: options.Index().SetName("price_category_index"),
				},
				{
					Keys:    bson.D{{Key: "rating.average", Value: -1}},
					Options: options.Index().SetName("rating_index"),
				},
				{
					Keys:    bson.D{{Key: "brand", Value: 1}},
					Options: options.Index().SetName("brand_index"),
				},
			},
		},
		{
			name: "orders",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "user_id", Value: 1}},
					Options: options.Index().SetName("user_id_index"),
				},
				{
					Keys:    bson.D{{Key: "timestamp", Value: -1}},
					Options: options.Index().SetName("timestamp_index"),
				},
				// Speeds up the popularity lookups against order line items.
				{
					Keys:    bson.D{{Key: "products.product_id", Value: 1}},
					Options: options.Index().SetName("order_products_product_id_idx"),
				},
			},
		},
		{
			name: "reviews",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "product_id", Value: 1}},
					Options: options.Index().SetName("product_id_index"),
				},
				{
					Keys:    bson.D{{Key: "user_id", Value: 1}},
					Options: options.Index().SetName("user_id_review_index"),
				},
			},
		},
		{
			name: "users",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetName("email_index").SetUnique(true),
				},
			},
		},
	}

	for _, collection := range collections {
		if _, err := db.Collection(collection.name).Indexes().CreateMany(ctx, collection.models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", collection.name, err)
		}
	}

	logrus.Info("Database indexes created successfully")
	return nil
}
