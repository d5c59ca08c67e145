// internal/services/order_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetUserOrdersInvalidID(t *testing.T) {
	s := &OrderService{}

	// Malformed ids are rejected before the store is touched.
	_, err := s.GetUserOrders(context.Background(), "not-an-object-id")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestGetOrderInvalidID(t *testing.T) {
	s := &OrderService{}

	_, err := s.GetOrder(context.Background(), "12345")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestUserOrdersPipelineShape(t *testing.T) {
	userID := primitive.NewObjectID()
	pipe := userOrdersPipeline(userID)

	assert.Equal(t, []string{
		"$match", "$sort", "$lookup", "$unwind", "$unwind", "$lookup", "$unwind", "$group", "$sort",
	}, stageKeys(pipe))

	match, ok := pipe[0][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{{Key: "user_id", Value: userID}}, match)

	// The final sort restores newest-first order lost by the regroup.
	finalSort, ok := pipe[len(pipe)-1][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{{Key: "timestamp", Value: -1}}, finalSort)
}

func TestUserOrdersPipelinePreservesMissingJoins(t *testing.T) {
	pipe := userOrdersPipeline(primitive.NewObjectID())

	// All three unwinds must keep documents whose join found nothing, so a
	// deleted product never drops its line item.
	preserved := 0
	for _, stage := range pipe {
		if stage[0].Key != "$unwind" {
			continue
		}
		spec, ok := stage[0].Value.(bson.D)
		require.True(t, ok, "enrichment unwinds use the option form")
		assert.Equal(t, bson.E{Key: "preserveNullAndEmptyArrays", Value: true}, spec[1])
		preserved++
	}
	assert.Equal(t, 3, preserved)
}

func TestUserOrdersPipelineRegroup(t *testing.T) {
	pipe := userOrdersPipeline(primitive.NewObjectID())

	var group bson.D
	for _, stage := range pipe {
		if stage[0].Key == "$group" {
			group = stage[0].Value.(bson.D)
		}
	}
	require.NotNil(t, group)

	// Scalar order fields survive the regroup via $first.
	fields := map[string]interface{}{}
	for _, e := range group {
		fields[e.Key] = e.Value
	}
	for _, key := range []string{"user_id", "user_name", "user_email", "user_location", "total_cost", "status", "timestamp"} {
		require.Contains(t, fields, key)
		assert.Contains(t, fields[key].(bson.D)[0].Key, "$first")
	}

	push, ok := fields["products"].(bson.D)
	require.True(t, ok)
	items, ok := push[0].Value.(bson.D)
	require.True(t, ok)

	// Each rebuilt item carries the snapshot plus the joined attributes.
	itemKeys := make([]string, 0, len(items))
	for _, e := range items {
		itemKeys = append(itemKeys, e.Key)
	}
	assert.Equal(t, []string{
		"product_id", "name", "price_at_purchase", "quantity",
		"description", "category", "brand", "current_price",
	}, itemKeys)
}
