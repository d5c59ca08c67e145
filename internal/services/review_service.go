// internal/services/review_service.go
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

// ReviewService lists the reviews of a product joined with reviewer
// details.
type ReviewService struct {
	reviews  *mongo.Collection
	products *mongo.Collection
}

func NewReviewService(db *mongo.Database) *ReviewService {
	return &ReviewService{
		reviews:  db.Collection("reviews"),
		products: db.Collection("products"),
	}
}

// GetProductReviews returns the product's reviews newest first. Reviews
// whose author was deleted are kept with nil name and email.
func (s *ReviewService) GetProductReviews(ctx context.Context, productID string, skip, limit int64) ([]models.ReviewWithUser, error) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrInvalidID
	}

	if err := s.products.FindOne(ctx, bson.M{"_id": oid}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cursor, err := s.reviews.Aggregate(ctx, productReviewsPipeline(oid, skip, limit))
	if err != nil {
		return nil, err
	}

	var reviews []models.ReviewWithUser
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// productReviewsPipeline paginates before the user join so the lookup only
// runs for the returned page.
func productReviewsPipeline(productID primitive.ObjectID, skip, limit int64) mongo.Pipeline {
	return pipeline.Build(
		pipeline.Match{Filter: bson.D{{Key: "product_id", Value: productID}}},
		pipeline.Sort{{Key: "timestamp", Value: -1}},
		pipeline.Skip(skip),
		pipeline.Limit(limit),
		pipeline.Lookup{From: "users", LocalField: "user_id", ForeignField: "_id", As: "user_info"},
		pipeline.AddFields{
			{Key: "user_name", Value: arrayElemAt("$user_info.name")},
			{Key: "user_email", Value: arrayElemAt("$user_info.email")},
		},
		pipeline.Project{
			{Key: "_id", Value: 1},
			{Key: "user_id", Value: 1},
			{Key: "product_id", Value: 1},
			{Key: "rating", Value: 1},
			{Key: "review_text", Value: 1},
			{Key: "timestamp", Value: 1},
			{Key: "user_name", Value: 1},
			{Key: "user_email", Value: 1},
		},
	)
}

func arrayElemAt(field string) bson.D {
	return bson.D{{Key: "$arrayElemAt", Value: bson.A{field, 0}}}
}
