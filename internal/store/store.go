// Package store isolates handlers from direct database access. Every
// collection is reached through the same small adapter surface; handlers
// never see a cursor or a driver error type beyond the sentinels below.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when a well-formed id matches no document.
	ErrNotFound = errors.New("not found")
)

// Store is the document store adapter. Insert returns the generated id as a
// hex string. FindMany decodes every document matching the exact-match filter
// into out, which must be a pointer to a slice; an empty filter matches all.
// DeleteByID and UpdateByID report ErrNotFound when no document matched.
type Store interface {
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	FindMany(ctx context.Context, collection string, filter bson.M, out interface{}) error
	DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) error
	UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) error
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Name() string
}
