// Package store provides accessors over the job, application and company collections.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

var (
	// ErrMalformedIdentifier is returned when an identifier cannot be parsed.
	ErrMalformedIdentifier = errors.New("malformed identifier")
	// ErrNotFound is returned when a lookup by identifier matches nothing.
	ErrNotFound = errors.New("document not found")
	// ErrStoreUnavailable is returned when the store cannot be reached.
	ErrStoreUnavailable = errors.New("document store unavailable")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate document")
	// ErrEmptyUpdate is returned when an update carries no writable field.
	ErrEmptyUpdate = errors.New("update has no writable fields")
	// ErrInvalidUpdate is returned when an update names an operator instead of a field.
	ErrInvalidUpdate = errors.New("update field names must not start with '$'")
)

// ParseID parses a hex encoded document identifier.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrMalformedIdentifier, hex)
	}
	return id, nil
}

// classify wraps a driver error with the matching sentinel.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w: %w", op, ErrDuplicate, err)
	case mongo.IsNetworkError(err),
		mongo.IsTimeout(err),
		errors.Is(err, mongo.ErrClientDisconnected),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &topology.ServerSelectionError{}):
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
