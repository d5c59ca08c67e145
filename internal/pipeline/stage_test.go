// internal/pipeline/stage_test.go
package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildPreservesStageOrder(t *testing.T) {
	pipe := Build(
		Match{Filter: bson.D{{Key: "category", Value: "Books"}}},
		Sort{{Key: "price", Value: 1}},
		Skip(5),
		Limit(10),
	)

	require.Len(t, pipe, 4)
	assert.Equal(t, "$match", pipe[0][0].Key)
	assert.Equal(t, "$sort", pipe[1][0].Key)
	assert.Equal(t, "$skip", pipe[2][0].Key)
	assert.Equal(t, "$limit", pipe[3][0].Key)
}

func TestSkipLimitValues(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "$skip", Value: int64(20)}}, Skip(20).Document())
	assert.Equal(t, bson.D{{Key: "$limit", Value: int64(10)}}, Limit(10).Document())
}

func TestUnwindRendering(t *testing.T) {
	plain := Unwind{Path: "$products"}.Document()
	assert.Equal(t, bson.D{{Key: "$unwind", Value: "$products"}}, plain)

	preserving := Unwind{Path: "$user_info", PreserveEmpty: true}.Document()
	assert.Equal(t, bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$user_info"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}, preserving)
}

func TestLookupRendering(t *testing.T) {
	doc := Lookup{From: "users", LocalField: "user_id", ForeignField: "_id", As: "user_info"}.Document()

	require.Equal(t, "$lookup", doc[0].Key)
	spec, ok := doc[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{
		{Key: "from", Value: "users"},
		{Key: "localField", Value: "user_id"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "user_info"},
	}, spec)
}
