// internal/pipeline/stage.go

// Package pipeline builds the aggregation pipelines behind the catalog's
// search, enrichment and analytics queries. Stages are plain values that
// render themselves to their driver representation, so assembly logic can
// be tested without a database.
package pipeline

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Stage is a single aggregation stage.
type Stage interface {
	Document() bson.D
}

// Build renders an ordered stage list into a driver pipeline.
func Build(stages ...Stage) mongo.Pipeline {
	pipe := make(mongo.Pipeline, 0, len(stages))
	for _, s := range stages {
		pipe = append(pipe, s.Document())
	}
	return pipe
}

type Match struct {
	Filter bson.D
}

func (m Match) Document() bson.D {
	return bson.D{{Key: "$match", Value: m.Filter}}
}

// Lookup is an equality join against another collection.
type Lookup struct {
	From         string
	LocalField   string
	ForeignField string
	As           string
}

func (l Lookup) Document() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: l.From},
		{Key: "localField", Value: l.LocalField},
		{Key: "foreignField", Value: l.ForeignField},
		{Key: "as", Value: l.As},
	}}}
}

// LookupPipeline is a correlated sub-pipeline join.
type LookupPipeline struct {
	From     string
	Let      bson.D
	Pipeline mongo.Pipeline
	As       string
}

func (l LookupPipeline) Document() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: l.From},
		{Key: "let", Value: l.Let},
		{Key: "pipeline", Value: l.Pipeline},
		{Key: "as", Value: l.As},
	}}}
}

// Unwind flattens an array field. PreserveEmpty keeps documents whose
// array is missing or empty instead of dropping them.
type Unwind struct {
	Path          string
	PreserveEmpty bool
}

func (u Unwind) Document() bson.D {
	if !u.PreserveEmpty {
		return bson.D{{Key: "$unwind", Value: u.Path}}
	}
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: u.Path},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}

type AddFields bson.D

func (a AddFields) Document() bson.D {
	return bson.D{{Key: "$addFields", Value: bson.D(a)}}
}

type Group bson.D

func (g Group) Document() bson.D {
	return bson.D{{Key: "$group", Value: bson.D(g)}}
}

type Sort bson.D

func (s Sort) Document() bson.D {
	return bson.D{{Key: "$sort", Value: bson.D(s)}}
}

type Skip int64

func (s Skip) Document() bson.D {
	return bson.D{{Key: "$skip", Value: int64(s)}}
}

type Limit int64

func (l Limit) Document() bson.D {
	return bson.D{{Key: "$limit", Value: int64(l)}}
}

type Project bson.D

func (p Project) Document() bson.D {
	return bson.D{{Key: "$project", Value: bson.D(p)}}
}
