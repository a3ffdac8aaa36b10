// Package store persists named drawing documents.
//
// A document pairs a human-chosen name with TikZ source and compile
// metadata. The preview server and the save/list CLI commands share the
// same Store interface, with implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - file: JSON files under the user data directory for CLI use
//   - mongo: MongoDB-backed storage for server deployments
//
// # Architecture
//
// Documents are keyed by name. Names are validated on construction, so
// every backend can safely embed them in file paths and database
// filters. Each document also carries a UUID that never changes across
// renames, which the preview server uses in URLs. The Store interface
// supports:
//   - Put/Get/GetByID/List/Delete operations
//   - Idempotent upsert semantics for Put
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// CLI
//	st, err := store.NewFileStore("")  // Uses ~/.local/share/tikzgo/documents/
//
//	// Server
//	st, err := store.NewMongoStore(ctx, "mongodb://localhost:27017", "tikzgo")
//
// Manage documents:
//
//	doc, err := store.New("euler-identity", source)
//	if err != nil {
//	    return err
//	}
//	if err := st.Put(ctx, doc); err != nil {
//	    return err
//	}
//
//	doc, err = st.Get(ctx, "euler-identity")
//	if errors.Is(err, store.ErrNotFound) {
//	    // No document with that name.
//	}
package store

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"github.com/saltsmart/tikzgo/pkg/errors"
)

// ErrNotFound is returned when a document does not exist.
// Backends wrap it with the document name, so use errors.Is to test.
var ErrNotFound = stderrors.New("document not found")

// Document is a stored drawing: TikZ source plus metadata.
// Names serve as the primary key in every backend, which is why the
// bson mapping puts Name in _id.
type Document struct {
	ID        string       `json:"id" bson:"id"`
	Name      string       `json:"name" bson:"_id"`
	Source    string       `json:"source" bson:"source"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
	Compiled  *CompileInfo `json:"compiled,omitempty" bson:"compiled,omitempty"`
}

// CompileInfo records the last successful compilation of a document.
type CompileInfo struct {
	Engine     string    `json:"engine" bson:"engine"`
	SourceHash string    `json:"source_hash" bson:"source_hash"`
	At         time.Time `json:"at" bson:"at"`
}

// New creates a document with a fresh UUID and timestamps.
func New(name, source string) (*Document, error) {
	if err := errors.ValidateDocumentName(name); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Document{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate reports whether the document can be persisted.
func (d *Document) Validate() error {
	if d == nil {
		return errors.New(errors.ErrCodeInvalidInput, "document is nil")
	}
	if d.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "document has no ID")
	}
	return errors.ValidateDocumentName(d.Name)
}

// SetSource replaces the document source and bumps UpdatedAt.
// The compile record is cleared because it no longer matches.
func (d *Document) SetSource(source string) {
	d.Source = source
	d.Compiled = nil
	d.UpdatedAt = time.Now().UTC()
}

// MarkCompiled records a successful compilation of the current source.
func (d *Document) MarkCompiled(engine, sourceHash string) {
	now := time.Now().UTC()
	d.Compiled = &CompileInfo{Engine: engine, SourceHash: sourceHash, At: now}
	d.UpdatedAt = now
}

// IsStale reports whether the document changed since it was last
// compiled. Documents that were never compiled are stale.
func (d *Document) IsStale(sourceHash string) bool {
	return d.Compiled == nil || d.Compiled.SourceHash != sourceHash
}

// Store is the interface for document storage backends.
type Store interface {
	// Put stores a document, replacing any document with the same name.
	Put(ctx context.Context, doc *Document) error

	// Get retrieves a document by name.
	// Returns an error wrapping ErrNotFound if no document exists.
	Get(ctx context.Context, name string) (*Document, error)

	// GetByID retrieves a document by its UUID.
	// Returns an error wrapping ErrNotFound if no document exists.
	GetByID(ctx context.Context, id string) (*Document, error)

	// List returns all documents sorted by name.
	List(ctx context.Context) ([]*Document, error)

	// Delete removes a document by name.
	// Returns an error wrapping ErrNotFound if no document exists.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// notFound wraps ErrNotFound with a stable code and the lookup key.
func notFound(key string) error {
	return errors.Wrap(errors.ErrCodeDocumentNotFound, ErrNotFound, "document %q", key)
}

// clone returns a deep copy so callers can mutate results freely.
func clone(d *Document) *Document {
	if d == nil {
		return nil
	}
	out := *d
	if d.Compiled != nil {
		ci := *d.Compiled
		out.Compiled = &ci
	}
	return &out
}
