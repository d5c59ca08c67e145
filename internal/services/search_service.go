// internal/services/search_service.go
package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openmart/ecommerce-backend/internal/models"
	"github.com/openmart/ecommerce-backend/internal/pipeline"
)

// SearchService answers catalog search requests by composing aggregation
// pipelines over the products collection.
type SearchService struct {
	products *mongo.Collection
}

func NewSearchService(db *mongo.Database) *SearchService {
	return &SearchService{
		products: db.Collection("products"),
	}
}

type SearchParams struct {
	Query  string
	Filter pipeline.ProductFilter
	Sort   pipeline.SortKey
	Skip   int64
	Limit  int64
}

// Search runs the two-phase match strategy: a ranked full-text pass for
// trimmed queries of three or more characters, then a fuzzy regex fallback
// when the text pass yields nothing. Both phases share the same filters,
// popularity join, ranking and pagination.
func (s *SearchService) Search(ctx context.Context, params SearchParams) ([]models.Product, error) {
	query := strings.TrimSpace(params.Query)

	if textPhaseEligible(query) {
		results, err := s.run(ctx, textSearchPipeline(query, params))
		if err != nil {
			return nil, err
		}
		if len(results) > 0 {
			return results, nil
		}
		logrus.WithField("query", query).Debug("Full-text search returned no results, falling back to fuzzy match")
	}

	return s.run(ctx, fuzzySearchPipeline(query, params))
}

// textPhaseEligible gates the full-text pass on the trimmed query length
// in characters, not bytes, so short multibyte queries go straight to the
// fuzzy match.
func textPhaseEligible(query string) bool {
	return utf8.RuneCountInString(query) >= 3
}

func (s *SearchService) run(ctx context.Context, pipe mongo.Pipeline) ([]models.Product, error) {
	cursor, err := s.products.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}

	var results []models.Product
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// textSearchPipeline merges the $text match with the filter predicate in a
// single stage; $text must lead the pipeline.
func textSearchPipeline(query string, params SearchParams) mongo.Pipeline {
	match := bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: query}}}}
	match = append(match, params.Filter.Document()...)

	return composeSearchPipeline(params, []pipeline.Stage{pipeline.Match{Filter: match}}, true)
}

// fuzzySearchPipeline applies the interleaved-wildcard match. The fuzzy
// clause is itself a disjunction, so an active filter runs as its own
// stage ahead of it instead of being merged in.
func fuzzySearchPipeline(query string, params SearchParams) mongo.Pipeline {
	fuzzy := pipeline.FuzzyMatch(query)

	var matchStages []pipeline.Stage
	if filter := params.Filter.Document(); len(filter) > 0 {
		matchStages = append(matchStages, pipeline.Match{Filter: filter}, pipeline.Match{Filter: fuzzy})
	} else {
		matchStages = append(matchStages, pipeline.Match{Filter: fuzzy})
	}

	return composeSearchPipeline(params, matchStages, false)
}

// composeSearchPipeline sequences the shared tail behind the match stages:
// popularity join when ranking or sorting needs it, score derivation or
// the explicit sort, then skip, limit and the response projection.
func composeSearchPipeline(params SearchParams, matchStages []pipeline.Stage, withTextScore bool) mongo.Pipeline {
	stages := append([]pipeline.Stage{}, matchStages...)

	if params.Sort.NeedsPopularity() {
		stages = append(stages, pipeline.PopularityStages()...)
	}
	if params.Sort.IsHybrid() {
		stages = append(stages, pipeline.HybridScore(withTextScore))
	}

	stages = append(stages,
		params.Sort.Stage(),
		pipeline.Skip(params.Skip),
		pipeline.Limit(params.Limit),
		pipeline.Project(searchProjection),
	)
	return pipeline.Build(stages...)
}

// searchProjection is the fixed response field whitelist. The transient
// score is always present, defaulting to 0 when no hybrid score was
// derived upstream.
var searchProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "name", Value: 1},
	{Key: "description", Value: 1},
	{Key: "category", Value: 1},
	{Key: "price", Value: 1},
	{Key: "brand", Value: 1},
	{Key: "rating", Value: 1},
	{Key: "stock", Value: 1},
	{Key: "created_at", Value: 1},
	{Key: "updated_at", Value: 1},
	{Key: "score", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$hybrid_score", 0}}}},
}
