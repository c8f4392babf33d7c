package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureStoreIndexes creates the text index over (name, description) and the
// 2dsphere index over location. Called once at startup; CreateMany is a
// no-op when the indexes already exist.
//
// The slug field deliberately carries no unique index, matching the
// documented slug-collision gap.
func EnsureStoreIndexes(ctx context.Context, stores *mongo.Collection) error {
	_, err := stores.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}}},
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "slug", Value: 1}}},
	})
	return err
}

// EnsureReviewIndexes indexes the store reference used by the read-time join.
func EnsureReviewIndexes(ctx context.Context, reviews *mongo.Collection) error {
	_, err := reviews.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "store", Value: 1}}},
	})
	return err
}
