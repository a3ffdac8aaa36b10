package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

const (
	defaultDatabase    = "tikzgo"
	documentCollection = "documents"

	mongoTimeout = 5 * time.Second
)

// MongoStore keeps documents in a MongoDB collection. Intended for
// preview-server deployments where drawings outlive a single machine.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
// An empty database name selects "tikzgo".
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = defaultDatabase
	}

	connectCtx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to MongoDB")
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping MongoDB")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(documentCollection),
	}, nil
}

// Put upserts by name. ReplaceOne on the name key is atomic, so two
// concurrent saves of the same document cannot interleave.
func (s *MongoStore) Put(ctx context.Context, doc *Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.Name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "store document %q", doc.Name)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, name string) (*Document, error) {
	return s.findOne(ctx, bson.M{"_id": name}, name)
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*Document, error) {
	return s.findOne(ctx, bson.M{"id": id}, id)
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M, key string) (*Document, error) {
	var doc Document
	err := s.coll.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, notFound(key)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "load document %q", key)
	}
	return &doc, nil
}

func (s *MongoStore) List(ctx context.Context) ([]*Document, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list documents")
	}

	var docs []*Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode documents")
	}
	return docs, nil
}

func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": name})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete document %q", name)
	}
	if res.DeletedCount == 0 {
		return notFound(name)
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
