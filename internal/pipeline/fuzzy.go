// internal/pipeline/fuzzy.go
package pipeline

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fuzzyFields are the product attributes the fallback match scans.
var fuzzyFields = []string{"name", "description", "brand", "category"}

// FuzzyPattern builds the fallback regex from a query: every character of
// the lowercased query must appear in the target, in order, with arbitrary
// gaps. Characters are not escaped, matching the original pattern
// semantics. A single-character query yields a valid pattern.
func FuzzyPattern(query string) string {
	chars := strings.Split(strings.ToLower(query), "")
	return ".*" + strings.Join(chars, ".*") + ".*"
}

// FuzzyMatch applies the fuzzy pattern case-insensitively across the
// searchable product fields as a disjunction.
func FuzzyMatch(query string) bson.D {
	pattern := FuzzyPattern(query)
	clauses := bson.A{}
	for _, field := range fuzzyFields {
		clauses = append(clauses, bson.D{{Key: field, Value: primitive.Regex{Pattern: pattern, Options: "i"}}})
	}
	return bson.D{{Key: "$or", Value: clauses}}
}
