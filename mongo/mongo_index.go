package mongo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes ensures the indexes the query paths rely on. Safe to run
// on every startup; CreateOne is a no-op for an index that already exists.
func CreateIndexes(db Database, userCollection string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := db.Collection(userCollection)
	createUniqueIndex(ctx, users, bson.D{{Key: "spotify_id", Value: 1}}, "spotify_id_unique")
	createIndex(ctx, users, bson.D{{Key: "updated_at", Value: -1}}, "updated_at")
}

func createIndex(ctx context.Context, coll Collection, keys bson.D, name string) {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}
	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
		log.Printf("create index %s failed: %v", name, err)
	}
}

func createUniqueIndex(ctx context.Context, coll Collection, keys bson.D, name string) {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(true),
	}
	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
		log.Printf("create unique index %s failed: %v", name, err)
	}
}
