package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
)

// firestoreCatalogImporter implements CatalogImporter using Firestore. It
// backs the one-shot seed/import tooling, which works with raw sanitized
// maps instead of the typed repositories so that seed documents keep any
// extra fields they carry.
type firestoreCatalogImporter struct {
	client *firestore.Client
}

// NewFirestoreCatalogImporter creates a new CatalogImporter backed by
// Firestore.
func NewFirestoreCatalogImporter(client *firestore.Client) CatalogImporter {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CatalogImporter.")
	}
	return &firestoreCatalogImporter{client: client}
}

// NextID computes the next sequential integer id for a top-level
// collection.
func (r *firestoreCatalogImporter) NextID(ctx context.Context, collection string) (int, error) {
	if collection == "" {
		return 0, errors.New("collection cannot be empty for NextID operation")
	}
	return nextID(ctx, r.client.Collection(collection))
}

// InsertRaw sanitizes and inserts a raw document, stamping createdAt and
// updatedAt server-side, and returns the new document ID.
func (r *firestoreCatalogImporter) InsertRaw(ctx context.Context, collection string, doc map[string]any) (string, error) {
	if collection == "" {
		return "", errors.New("collection cannot be empty for InsertRaw operation")
	}
	clean := SanitizeMap(doc)
	clean["createdAt"] = firestore.ServerTimestamp
	clean["updatedAt"] = firestore.ServerTimestamp

	docRef := r.client.Collection(collection).NewDoc()
	if _, err := docRef.Create(ctx, clean); err != nil {
		return "", fmt.Errorf("failed to insert document into '%s': %w", collection, err)
	}
	return docRef.ID, nil
}

// InsertSubproductoRaw sanitizes and inserts a raw subproduct under the
// given product document.
func (r *firestoreCatalogImporter) InsertSubproductoRaw(ctx context.Context, productoDocID string, doc map[string]any) (string, error) {
	if productoDocID == "" {
		return "", errors.New("productoDocID cannot be empty for InsertSubproductoRaw operation")
	}
	clean := SanitizeMap(doc)
	clean["createdAt"] = firestore.ServerTimestamp
	clean["updatedAt"] = firestore.ServerTimestamp

	docRef := r.client.Collection(productosCollection).Doc(productoDocID).Collection(subproductosCollection).NewDoc()
	if _, err := docRef.Create(ctx, clean); err != nil {
		return "", fmt.Errorf("failed to insert subproducto under '%s': %w", productoDocID, err)
	}
	return docRef.ID, nil
}
