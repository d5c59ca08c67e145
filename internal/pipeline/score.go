// internal/pipeline/score.go
package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Hybrid ranking weights. Kept as variables so a deployment can tune them.
var (
	WeightText       = 0.4
	WeightPopularity = 0.4
	WeightPrice      = 0.2
	PopularityScale  = 100.0
)

// HybridScore returns the $addFields stage deriving the composite ranking
// score: weighted text relevance (text phase only), popularity capped at
// PopularityScale orders, and price favorability as a reciprocal.
func HybridScore(withTextScore bool) AddFields {
	terms := bson.A{}
	if withTextScore {
		terms = append(terms, bson.D{{Key: "$multiply", Value: bson.A{
			WeightText,
			bson.D{{Key: "$meta", Value: "textScore"}},
		}}})
	}
	terms = append(terms,
		bson.D{{Key: "$multiply", Value: bson.A{
			WeightPopularity,
			bson.D{{Key: "$min", Value: bson.A{
				1,
				bson.D{{Key: "$divide", Value: bson.A{"$popularity", PopularityScale}}},
			}}},
		}}},
		bson.D{{Key: "$multiply", Value: bson.A{
			WeightPrice,
			bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$gt", Value: bson.A{"$price", 0}}},
				bson.D{{Key: "$divide", Value: bson.A{1, "$price"}}},
				0,
			}}},
		}}},
	)

	fields := bson.D{}
	if withTextScore {
		fields = append(fields, bson.E{Key: "text_score", Value: bson.D{{Key: "$meta", Value: "textScore"}}})
	}
	fields = append(fields, bson.E{Key: "hybrid_score", Value: bson.D{{Key: "$add", Value: terms}}})
	return AddFields(fields)
}
