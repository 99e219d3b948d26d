package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore maps collections one-to-one onto MongoDB collections.
type MongoStore struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoStore connects to uri, verifies the connection and selects dbName.
func NewMongoStore(ctx context.Context, uri, dbName string, maxConns int) (*MongoStore, error) {
	opts := options.Client().ApplyURI(uri)
	if maxConns > 0 {
		opts.SetMaxPoolSize(uint64(maxConns))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to establish mongo connection: %w", err)
	}

	return &MongoStore{client: client, database: client.Database(dbName)}, nil
}

func (s *MongoStore) Name() string { return "mongo" }

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc Document) (any, error) {
	res, err := s.database.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.database.Collection(collection).Find(ctx, toBSON(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(raw))
	for _, r := range raw {
		docs = append(docs, Document(r))
	}
	return docs, nil
}

func (s *MongoStore) CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error) {
	return s.database.Collection(collection).CountDocuments(ctx, toBSON(filter))
}

func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.database.ListCollectionNames(ctx, bson.D{})
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// toBSON never returns nil; the driver rejects a nil filter.
func toBSON(filter Filter) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}
