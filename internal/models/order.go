// internal/models/order.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a line item with the product name and price snapshotted at
// purchase time.
type OrderItem struct {
	ProductID       primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name            string             `bson:"name" json:"name"`
	PriceAtPurchase float64            `bson:"price_at_purchase" json:"price_at_purchase"`
	Quantity        int                `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Products  []OrderItem        `bson:"products" json:"products"`
	TotalCost float64            `bson:"total_cost" json:"total_cost"`
	Status    string             `bson:"status" json:"status"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// EnhancedOrderItem is an OrderItem joined with the product's current
// attributes. The pointer fields stay nil when the product no longer
// exists; the purchase-time snapshot is kept either way.
type EnhancedOrderItem struct {
	ProductID       primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name            string             `bson:"name" json:"name"`
	PriceAtPurchase float64            `bson:"price_at_purchase" json:"price_at_purchase"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	Description     *string            `bson:"description" json:"description"`
	Category        *string            `bson:"category" json:"category"`
	Brand           *string            `bson:"brand" json:"brand"`
	CurrentPrice    *float64           `bson:"current_price" json:"current_price"`
}

// EnhancedOrder is an Order flattened with the owning user's details.
type EnhancedOrder struct {
	ID           primitive.ObjectID  `bson:"_id" json:"id"`
	UserID       primitive.ObjectID  `bson:"user_id" json:"user_id"`
	UserName     *string             `bson:"user_name" json:"user_name"`
	UserEmail    *string             `bson:"user_email" json:"user_email"`
	UserLocation *string             `bson:"user_location" json:"user_location"`
	Products     []EnhancedOrderItem `bson:"products" json:"products"`
	TotalCost    float64             `bson:"total_cost" json:"total_cost"`
	Status       string              `bson:"status" json:"status"`
	Timestamp    time.Time           `bson:"timestamp" json:"timestamp"`
}
