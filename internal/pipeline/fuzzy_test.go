// internal/pipeline/fuzzy_test.go
package pipeline

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFuzzyPattern(t *testing.T) {
	assert.Equal(t, ".*a.*b.*c.*", FuzzyPattern("abc"))
	assert.Equal(t, ".*l.*p.*t.*p.*", FuzzyPattern("lptp"))

	// A one-character query still builds a valid pattern.
	assert.Equal(t, ".*a.*", FuzzyPattern("A"))
}

func TestFuzzyPatternMatchesCharactersInOrder(t *testing.T) {
	re, err := regexp.Compile("(?i)" + FuzzyPattern("lptp"))
	require.NoError(t, err)

	assert.True(t, re.MatchString("Laptop"))
	assert.True(t, re.MatchString("gaming laptop pro"))

	// Characters out of order or missing do not match.
	assert.False(t, re.MatchString("tablet"))
	assert.False(t, re.MatchString("ptpl"))
}

func TestFuzzyMatchCoversAllSearchFields(t *testing.T) {
	doc := FuzzyMatch("tv")
	require.Len(t, doc, 1)
	assert.Equal(t, "$or", doc[0].Key)

	clauses, ok := doc[0].Value.(bson.A)
	require.True(t, ok)
	require.Len(t, clauses, 4)

	fields := make([]string, 0, len(clauses))
	for _, clause := range clauses {
		d, ok := clause.(bson.D)
		require.True(t, ok)
		require.Len(t, d, 1)
		fields = append(fields, d[0].Key)

		re, ok := d[0].Value.(primitive.Regex)
		require.True(t, ok)
		assert.Equal(t, ".*t.*v.*", re.Pattern)
		assert.Equal(t, "i", re.Options)
	}
	assert.Equal(t, []string{"name", "description", "brand", "category"}, fields)
}
