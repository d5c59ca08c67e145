// internal/models/analytics.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TopProduct is the per-product sales rollup for the analytics endpoint.
// Name, category, brand and price are the product's current attributes,
// not the purchase-time snapshots.
type TopProduct struct {
	ID                primitive.ObjectID `bson:"_id" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Category          string             `bson:"category" json:"category"`
	Brand             string             `bson:"brand" json:"brand"`
	Price             float64            `bson:"price" json:"price"`
	PurchaseCount     int                `bson:"purchase_count" json:"purchase_count"`
	TotalQuantitySold int                `bson:"total_quantity_sold" json:"total_quantity_sold"`
}
