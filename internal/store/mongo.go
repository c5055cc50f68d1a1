package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoGateway implements Gateway on a MongoDB database.
type MongoGateway struct {
	db *mongo.Database
}

func NewMongoGateway(db *mongo.Database) *MongoGateway {
	return &MongoGateway{db: db}
}

func (g *MongoGateway) Insert(ctx context.Context, collection string, doc Document) (any, error) {
	res, err := g.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}
	return res.InsertedID, nil
}

func (g *MongoGateway) FindByID(ctx context.Context, collection string, id any) (Document, error) {
	var raw bson.M
	err := g.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	return Document(raw), nil
}

func (g *MongoGateway) FindAll(ctx context.Context, collection string) ([]Document, error) {
	cur, err := g.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find all in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	out := make([]Document, 0, 16)
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode document from %s: %w", collection, err)
		}
		out = append(out, Document(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor on %s: %w", collection, err)
	}
	return out, nil
}

func (g *MongoGateway) Count(ctx context.Context, collection string) (int64, error) {
	n, err := g.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (g *MongoGateway) Collections(ctx context.Context) ([]string, error) {
	names, err := g.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}
