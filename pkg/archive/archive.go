// Package archive provides persistent storage for named tree documents.
//
// This package defines the store interface for tree collections, with
// implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for server deployments
//
// # Usage
//
// Create a store:
//
//	// Development
//	store := archive.NewMemoryStore()
//
//	// Server
//	store, err := archive.NewMongoStore(ctx, archive.MongoConfig{
//	    URI:      "mongodb://localhost:27017",
//	    Database: "treegraft",
//	})
//
// Save and retrieve trees:
//
//	doc := archive.NewDocument("mammals", treeio.FromTree(t))
//	if err := store.Put(ctx, doc); err != nil {
//	    return err
//	}
//
//	doc, err := store.Get(ctx, doc.ID)
//	if errors.Is(err, archive.ErrNotFound) {
//	    // No such document
//	}
package archive

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/treegraft/treegraft/pkg/treeio"
)

// Sentinel errors for archive operations.
var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("document not found")
)

// Document is a stored tree with identity and timestamps.
type Document struct {
	ID        string      `json:"id" bson:"_id"`
	Name      string      `json:"name" bson:"name"`
	Tree      treeio.Tree `json:"tree" bson:"tree"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// NewDocument creates a document with a fresh UUID and current timestamps.
func NewDocument(name string, tree treeio.Tree) *Document {
	now := time.Now().UTC()
	return &Document{
		ID:        uuid.NewString(),
		Name:      name,
		Tree:      tree,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store is the interface for tree document storage backends.
type Store interface {
	// Put stores a document, replacing any existing document with the
	// same ID. UpdatedAt is refreshed on write.
	Put(ctx context.Context, doc *Document) error

	// Get retrieves a document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	Get(ctx context.Context, id string) (*Document, error)

	// List returns all documents, newest first. Trees are included.
	List(ctx context.Context) ([]*Document, error)

	// Delete removes a document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
