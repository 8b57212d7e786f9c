package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by FindOne when no document matches.
var ErrNotFound = errors.New("document not found")

// Collection is the narrow slice of document-store operations the services
// depend on. The mongo adapter below implements it against a live
// collection; Memory implements it in process for tests.
type Collection interface {
	// Find decodes every document matching filter into results (a pointer
	// to a slice). sort may be nil or a bson.D of {field, 1|-1} pairs.
	Find(ctx context.Context, filter interface{}, sort interface{}, results interface{}) error
	FindOne(ctx context.Context, filter interface{}, result interface{}) error
	InsertOne(ctx context.Context, doc interface{}) error
	// FindOneAndUpdate applies patch as a $set to the first document
	// matching filter and decodes the updated document into result. The
	// match and the write are a single atomic operation; two callers
	// racing on the same filter cannot both observe a match. Returns
	// false when no document matches.
	FindOneAndUpdate(ctx context.Context, filter interface{}, patch interface{}, result interface{}) (bool, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, patch interface{}, result interface{}) (bool, error)
}

type mongoCollection struct {
	col *mongo.Collection
}

func (m *mongoCollection) Find(ctx context.Context, filter interface{}, sort interface{}, results interface{}) error {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

func (m *mongoCollection) FindOne(ctx context.Context, filter interface{}, result interface{}) error {
	err := m.col.FindOne(ctx, filter).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (m *mongoCollection) InsertOne(ctx context.Context, doc interface{}) error {
	_, err := m.col.InsertOne(ctx, doc)
	return err
}

func (m *mongoCollection) FindOneAndUpdate(ctx context.Context, filter interface{}, patch interface{}, result interface{}) (bool, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := m.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": patch}, opts).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *mongoCollection) UpdateByID(ctx context.Context, id primitive.ObjectID, patch interface{}, result interface{}) (bool, error) {
	return m.FindOneAndUpdate(ctx, bson.M{"_id": id}, patch, result)
}
