// internal/services/order_service.go
package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openmart/ecommerce-backend/internal/models"
	"github.com/openmart/ecommerce-backend/internal/pipeline"
)

// OrderService serves order history and order detail lookups.
type OrderService struct {
	orders *mongo.Collection
	users  *mongo.Collection
}

func NewOrderService(db *mongo.Database) *OrderService {
	return &OrderService{
		orders: db.Collection("orders"),
		users:  db.Collection("users"),
	}
}

// GetUserOrders returns the user's order history newest first, each order
// flattened with the owner's details and every line item joined against
// the current product document. Items whose product no longer exists keep
// their purchase-time snapshot with nil enrichment fields.
func (s *OrderService) GetUserOrders(ctx context.Context, userID string) ([]models.EnhancedOrder, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	cursor, err := s.orders.Aggregate(ctx, userOrdersPipeline(oid))
	if err != nil {
		return nil, err
	}

	var orders []models.EnhancedOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns the raw order document with its purchase-time line
// items; no user or product enrichment.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrInvalidID
	}

	var order models.Order
	if err := s.orders.FindOne(ctx, bson.M{"_id": oid}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// userOrdersPipeline flattens each order's line items, joins user and
// product details, then regroups by order id. Scalar order fields survive
// the regroup via $first; the item list is rebuilt in document order with
// the joined product attributes attached.
func userOrdersPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return pipeline.Build(
		pipeline.Match{Filter: bson.D{{Key: "user_id", Value: userID}}},
		pipeline.Sort{{Key: "timestamp", Value: -1}},
		pipeline.Lookup{From: "users", LocalField: "user_id", ForeignField: "_id", As: "user_info"},
		pipeline.Unwind{Path: "$user_info", PreserveEmpty: true},
		pipeline.Unwind{Path: "$products", PreserveEmpty: true},
		pipeline.Lookup{From: "products", LocalField: "products.product_id", ForeignField: "_id", As: "product_info"},
		pipeline.Unwind{Path: "$product_info", PreserveEmpty: true},
		pipeline.Group{
			{Key: "_id", Value: "$_id"},
			{Key: "user_id", Value: first("$user_id")},
			{Key: "user_name", Value: first("$user_info.name")},
			{Key: "user_email", Value: first("$user_info.email")},
			{Key: "user_location", Value: first("$user_info.location")},
			{Key: "total_cost", Value: first("$total_cost")},
			{Key: "status", Value: first("$status")},
			{Key: "timestamp", Value: first("$timestamp")},
			{Key: "products", Value: bson.D{{Key: "$push", Value: bson.D{
				{Key: "product_id", Value: "$products.product_id"},
				{Key: "name", Value: "$products.name"},
				{Key: "price_at_purchase", Value: "$products.price_at_purchase"},
				{Key: "quantity", Value: "$products.quantity"},
				{Key: "description", Value: "$product_info.description"},
				{Key: "category", Value: "$product_info.category"},
				{Key: "brand", Value: "$product_info.brand"},
				{Key: "current_price", Value: "$product_info.price"},
			}}}},
		},
		// $group does not preserve input order, so the sort runs again.
		pipeline.Sort{{Key: "timestamp", Value: -1}},
	)
}

func first(field string) bson.D {
	return bson.D{{Key: "$first", Value: field}}
}
