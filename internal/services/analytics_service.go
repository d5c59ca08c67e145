// internal/services/analytics_service.go
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openmart/ecommerce-backend/internal/models"
	"github.com/openmart/ecommerce-backend/internal/pipeline"
)

// AnalyticsService computes time-windowed sales rollups over the orders
// collection.
type AnalyticsService struct {
	orders *mongo.Collection
}

func NewAnalyticsService(db *mongo.Database) *AnalyticsService {
	return &AnalyticsService{
		orders: db.Collection("orders"),
	}
}

type TopProductsParams struct {
	Days     int
	Limit    int64
	Category string
}

// GetTopProducts ranks products by the number of purchasing orders within
// the lookback window. The result is a single global top-N; the optional
// category filters it, it does not group per category. Line items whose
// product was deleted are excluded from the totals (inner join), unlike
// the null-preserving order enrichment.
func (s *AnalyticsService) GetTopProducts(ctx context.Context, params TopProductsParams) ([]models.TopProduct, error) {
	threshold := time.Now().UTC().Add(-time.Duration(params.Days) * 24 * time.Hour)

	cursor, err := s.orders.Aggregate(ctx, topProductsPipeline(threshold, params))
	if err != nil {
		return nil, err
	}

	var topProducts []models.TopProduct
	if err := cursor.All(ctx, &topProducts); err != nil {
		return nil, err
	}
	return topProducts, nil
}

func topProductsPipeline(threshold time.Time, params TopProductsParams) mongo.Pipeline {
	stages := []pipeline.Stage{
		pipeline.Match{Filter: bson.D{{Key: "timestamp", Value: bson.D{{Key: "$gte", Value: threshold}}}}},
		pipeline.Unwind{Path: "$products"},
		pipeline.Lookup{From: "products", LocalField: "products.product_id", ForeignField: "_id", As: "product_info"},
		pipeline.Unwind{Path: "$product_info"},
		pipeline.Group{
			{Key: "_id", Value: "$products.product_id"},
			{Key: "name", Value: first("$product_info.name")},
			{Key: "category", Value: first("$product_info.category")},
			{Key: "brand", Value: first("$product_info.brand")},
			{Key: "price", Value: first("$product_info.price")},
			{Key: "purchase_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_quantity_sold", Value: bson.D{{Key: "$sum", Value: "$products.quantity"}}},
		},
	}

	if params.Category != "" {
		// Exact match on the grouped category, not a substring filter.
		stages = append(stages, pipeline.Match{Filter: bson.D{{Key: "category", Value: params.Category}}})
	}

	stages = append(stages,
		pipeline.Sort{{Key: "purchase_count", Value: -1}},
		pipeline.Limit(params.Limit),
	)
	return pipeline.Build(stages...)
}
