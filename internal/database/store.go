package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// InsertResult mirrors the shape clients of this API expect from a write:
// the raw store result is echoed back verbatim.
type InsertResult struct {
	InsertedID any `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Collection is the document-store surface handlers are written against.
// Filters are exact-match bson documents; UpdateOne applies $set semantics.
type Collection interface {
	InsertOne(ctx context.Context, doc any) (*InsertResult, error)
	FindOne(ctx context.Context, filter bson.M, out any) error
	Find(ctx context.Context, filter bson.M, out any) error
	UpdateOne(ctx context.Context, filter bson.M, set bson.M) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (*DeleteResult, error)
}

// Store bundles the four collections this service reads and writes. It is
// opened once in main and passed to handlers; there is no other shared state.
type Store struct {
	Camps         Collection
	Users         Collection
	Registrations Collection
	Payments      Collection

	closer func(ctx context.Context) error
}

// Close releases the underlying client. Safe to call on a memory store.
func (s *Store) Close(ctx context.Context) error {
	if s.closer == nil {
		return nil
	}
	return s.closer(ctx)
}
