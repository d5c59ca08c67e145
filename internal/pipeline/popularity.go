// internal/pipeline/popularity.go
package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PopularityStages counts, per candidate product, the orders whose line
// items reference it, and surfaces the count as "popularity" (0 when the
// product appears in no order).
func PopularityStages() []Stage {
	return []Stage{
		LookupPipeline{
			From: "orders",
			Let:  bson.D{{Key: "pid", Value: "$_id"}},
			Pipeline: mongo.Pipeline{
				{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{{Key: "$in", Value: bson.A{"$$pid", "$products.product_id"}}}},
				}}},
				{{Key: "$group", Value: bson.D{
					{Key: "_id", Value: 1},
					{Key: "c", Value: bson.D{{Key: "$sum", Value: 1}}},
				}}},
			},
			As: "pop",
		},
		AddFields{{Key: "popularity", Value: bson.D{{Key: "$ifNull", Value: bson.A{
			bson.D{{Key: "$arrayElemAt", Value: bson.A{"$pop.c", 0}}},
			0,
		}}}}},
	}
}
