// internal/models/review.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user_id" json:"user_id"`
	ProductID  primitive.ObjectID `bson:"product_id" json:"product_id"`
	Rating     int                `bson:"rating" json:"rating"`
	ReviewText *string            `bson:"review_text,omitempty" json:"review_text,omitempty"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}

// ReviewWithUser carries the reviewer's name and email alongside the
// review; both stay nil when the user was deleted.
type ReviewWithUser struct {
	Review    `bson:",inline"`
	UserName  *string `bson:"user_name" json:"user_name"`
	UserEmail *string `bson:"user_email" json:"user_email"`
}
