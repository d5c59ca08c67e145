// internal/database/seed.go
package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var seedCollections = []string{"products", "users", "orders", "reviews"}

// Seed bulk-loads the collections from extended-JSON files under dataPath.
// A collection that already holds documents is left untouched.
func Seed(ctx context.Context, db *mongo.Database, dataPath string) error {
	for _, name := range seedCollections {
		if err := loadCollection(ctx, db, name, filepath.Join(dataPath, name+".json")); err != nil {
			return err
		}
	}
	return nil
}

func loadCollection(ctx context.Context, db *mongo.Database, name, path string) error {
	collection := db.Collection(name)

	count, err := collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to count documents in %s: %w", name, err)
	}
	if count > 0 {
		logrus.WithField("collection", name).Info("Collection already has data, skipping seed")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("path", path).Warn("Seed file not found, skipping")
			return nil
		}
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	docs, err := decodeSeedDocuments(data)
	if err != nil {
		return fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}
	if len(docs) == 0 {
		return nil
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed %s: %w", name, err)
	}

	logrus.WithFields(logrus.Fields{
		"collection": name,
		"count":      len(docs),
	}).Info("Seeded collection")
	return nil
}

// decodeSeedDocuments parses a top-level extended-JSON array, resolving
// $oid and $date markers into native types. The array is wrapped in a
// document first because the decoder only accepts documents at the top
// level.
func decodeSeedDocuments(data []byte) ([]interface{}, error) {
	wrapped := make([]byte, 0, len(data)+16)
	wrapped = append(wrapped, []byte(`{"docs":`)...)
	wrapped = append(wrapped, data...)
	wrapped = append(wrapped, '}')

	var parsed struct {
		Docs []bson.D `bson:"docs"`
	}
	if err := bson.UnmarshalExtJSON(wrapped, false, &parsed); err != nil {
		return nil, err
	}

	docs := make([]interface{}, len(parsed.Docs))
	for i, doc := range parsed.Docs {
		docs[i] = doc
	}
	return docs, nil
}
