// internal/services/analytics_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestTopProductsPipelineShape(t *testing.T) {
	threshold := time.Now().UTC().Add(-30 * 24 * time.Hour)
	pipe := topProductsPipeline(threshold, TopProductsParams{Days: 30, Limit: 5})

	assert.Equal(t, []string{
		"$match", "$unwind", "$lookup", "$unwind", "$group", "$sort", "$limit",
	}, stageKeys(pipe))

	match, ok := pipe[0][0].Value.(bson.D)
	require.True(t, ok)
	window, ok := match[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "$gte", window[0].Key)
	assert.Equal(t, threshold, window[0].Value)
}

func TestTopProductsPipelineInnerJoin(t *testing.T) {
	pipe := topProductsPipeline(time.Now(), TopProductsParams{Days: 30, Limit: 5})

	// Both unwinds use the bare form: a line item whose product was deleted
	// is dropped from the totals, not null-preserved.
	for _, idx := range []int{1, 3} {
		path, ok := pipe[idx][0].Value.(string)
		require.True(t, ok, "unwind at %d must be the bare string form", idx)
		assert.Contains(t, []string{"$products", "$product_info"}, path)
	}
}

func TestTopProductsPipelineCategoryFilter(t *testing.T) {
	pipe := topProductsPipeline(time.Now(), TopProductsParams{Days: 30, Limit: 5, Category: "Electronics"})

	// The category match follows the group and is exact, not a substring.
	assert.Equal(t, []string{
		"$match", "$unwind", "$lookup", "$unwind", "$group", "$match", "$sort", "$limit",
	}, stageKeys(pipe))

	categoryMatch, ok := pipe[5][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{{Key: "category", Value: "Electronics"}}, categoryMatch)
}

func TestTopProductsPipelineRanking(t *testing.T) {
	pipe := topProductsPipeline(time.Now(), TopProductsParams{Days: 30, Limit: 7})

	var group bson.D
	for _, stage := range pipe {
		if stage[0].Key == "$group" {
			group = stage[0].Value.(bson.D)
		}
	}
	require.NotNil(t, group)

	fields := map[string]interface{}{}
	for _, e := range group {
		fields[e.Key] = e.Value
	}
	assert.Equal(t, "$products.product_id", fields["_id"])
	assert.Equal(t, bson.D{{Key: "$sum", Value: 1}}, fields["purchase_count"])
	assert.Equal(t, bson.D{{Key: "$sum", Value: "$products.quantity"}}, fields["total_quantity_sold"])

	sort, ok := pipe[len(pipe)-2][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{{Key: "purchase_count", Value: -1}}, sort)

	assert.Equal(t, bson.D{{Key: "$limit", Value: int64(7)}}, bson.D(pipe[len(pipe)-1]))
}
