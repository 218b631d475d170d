package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/campdoc/campdoc-api/internal/config"
)

const connectTimeout = 10 * time.Second

// Connect opens the Mongo client, verifies the connection with a ping and
// returns the collection set the handlers operate on.
func Connect(ctx context.Context, cfg *config.Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(cfg.DatabaseName)

	return &Store{
		Camps:         &mongoCollection{db.Collection("camp")},
		Users:         &mongoCollection{db.Collection("users")},
		Registrations: &mongoCollection{db.Collection("registeredCamps")},
		Payments:      &mongoCollection{db.Collection("payments")},
		closer:        client.Disconnect,
	}, nil
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc any) (*InsertResult, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &InsertResult{InsertedID: res.InsertedID}, nil
}

func (c *mongoCollection) FindOne(ctx context.Context, filter bson.M, out any) error {
	err := c.coll.FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (c *mongoCollection) Find(ctx context.Context, filter bson.M, out any) error {
	cur, err := c.coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (*UpdateResult, error) {
	res, err := c.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) (*DeleteResult, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}
