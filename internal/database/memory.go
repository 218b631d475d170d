package database

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewMemoryStore returns a Store backed by in-process collections. It
// supports the exact-match filters this service uses and exists so handler
// tests can run without a Mongo server.
func NewMemoryStore() *Store {
	return &Store{
		Camps:         &memoryCollection{},
		Users:         &memoryCollection{},
		Registrations: &memoryCollection{},
		Payments:      &memoryCollection{},
	}
}

type memoryCollection struct {
	mu   sync.Mutex
	docs []bson.M
}

func (c *memoryCollection) InsertOne(_ context.Context, doc any) (*InsertResult, error) {
	var m bson.M
	if err := roundTrip(doc, &m); err != nil {
		return nil, err
	}
	if _, ok := m["_id"]; !ok {
		m["_id"] = primitive.NewObjectID()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, m)
	return &InsertResult{InsertedID: m["_id"]}, nil
}

func (c *memoryCollection) FindOne(_ context.Context, filter bson.M, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range c.docs {
		if matches(doc, filter) {
			return roundTrip(doc, out)
		}
	}
	return ErrNotFound
}

func (c *memoryCollection) Find(_ context.Context, filter bson.M, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	matched := []bson.M{}
	for _, doc := range c.docs {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}
	return roundTrip(matched, out)
}

func (c *memoryCollection) UpdateOne(_ context.Context, filter bson.M, set bson.M) (*UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range c.docs {
		if !matches(doc, filter) {
			continue
		}
		res := &UpdateResult{MatchedCount: 1}
		for k, v := range set {
			if !reflect.DeepEqual(doc[k], v) {
				doc[k] = v
				res.ModifiedCount = 1
			}
		}
		return res, nil
	}
	return &UpdateResult{}, nil
}

func (c *memoryCollection) DeleteOne(_ context.Context, filter bson.M) (*DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, doc := range c.docs {
		if matches(doc, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return &DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &DeleteResult{}, nil
}

func matches(doc, filter bson.M) bool {
	for k, v := range filter {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

// roundTrip copies a value through its bson encoding, the same normalization
// a document goes through against the real store.
func roundTrip(in, out any) error {
	t, data, err := bson.MarshalValue(in)
	if err != nil {
		return err
	}
	return bson.UnmarshalValue(t, data, out)
}
