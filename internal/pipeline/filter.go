// internal/pipeline/filter.go
package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductFilter holds the optional catalog constraints of a search
// request. A nil/empty field contributes no clause.
type ProductFilter struct {
	MinPrice *float64
	MaxPrice *float64
	Category string
	Brand    string
}

// Document renders the conjunctive filter predicate. Price bounds are
// inclusive and combine into a single range; category and brand match as
// case-insensitive substrings.
func (f ProductFilter) Document() bson.D {
	filter := bson.D{}

	price := bson.D{}
	if f.MinPrice != nil {
		price = append(price, bson.E{Key: "$gte", Value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		price = append(price, bson.E{Key: "$lte", Value: *f.MaxPrice})
	}
	if len(price) > 0 {
		filter = append(filter, bson.E{Key: "price", Value: price})
	}

	if f.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: primitive.Regex{Pattern: f.Category, Options: "i"}})
	}
	if f.Brand != "" {
		filter = append(filter, bson.E{Key: "brand", Value: primitive.Regex{Pattern: f.Brand, Options: "i"}})
	}

	return filter
}
