package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SequenceGenerator mints monotonically increasing integer ids from a counters
// collection. Each named sequence is one document; FindOneAndUpdate with $inc
// is atomic on the server, so concurrent requests never observe the same id.
type SequenceGenerator struct {
	counters *mongo.Collection
}

// NewSequenceGenerator creates a sequence generator backed by the given database.
func NewSequenceGenerator(db *mongo.Database) *SequenceGenerator {
	return &SequenceGenerator{
		counters: db.Collection("counters"),
	}
}

type counterDoc struct {
	ID    string `bson:"_id"`
	Value int64  `bson:"value"`
}

// Next returns the next id for the named sequence, creating the sequence on
// first use.
func (g *SequenceGenerator) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := g.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence %q: %w", name, err)
	}

	return doc.Value, nil
}
