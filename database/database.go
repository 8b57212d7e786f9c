package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB is an explicit handle on the document store. It is constructed once in
// main and passed down; nothing in this package holds global state.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, name string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &DB{client: client, db: client.Database(name)}, nil
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *DB) Collection(name string) Collection {
	return &mongoCollection{col: d.db.Collection(name)}
}

// EnsureIndexes creates the unique index on the table number. The service
// also checks uniqueness before insert; the index backstops concurrent
// creates.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	unique := true
	_, err := d.db.Collection("meja").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tableNumber", Value: 1}},
		Options: &options.IndexOptions{Unique: &unique},
	})
	return err
}
