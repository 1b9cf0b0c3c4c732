package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"waterwises-admin-go/internal/models"
)

const (
	productosCollection    = "productos"
	subproductosCollection = "subproductos"
)

// firestoreProductoRepository implements ProductoRepository using Firestore.
type firestoreProductoRepository struct {
	client *firestore.Client
}

// NewFirestoreProductoRepository creates a new ProductoRepository backed by
// Firestore.
func NewFirestoreProductoRepository(client *firestore.Client) ProductoRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ProductoRepository.")
	}
	return &firestoreProductoRepository{client: client}
}

func (r *firestoreProductoRepository) subColl(productoDocID string) *firestore.CollectionRef {
	return r.client.Collection(productosCollection).Doc(productoDocID).Collection(subproductosCollection)
}

// List returns all products ordered by id ascending, each with its
// subproductos subcollection hydrated.
func (r *firestoreProductoRepository) List(ctx context.Context) ([]*models.Producto, error) {
	iter := r.client.Collection(productosCollection).OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var productos []*models.Producto
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate productos: %w", err)
		}

		var producto models.Producto
		if err := doc.DataTo(&producto); err != nil {
			return nil, fmt.Errorf("failed to decode producto '%s': %w", doc.Ref.ID, err)
		}
		producto.DocID = doc.Ref.ID

		subs, err := r.ListSubproductos(ctx, doc.Ref.ID)
		if err != nil {
			return nil, err
		}
		producto.Subproductos = subs

		productos = append(productos, &producto)
	}
	return productos, nil
}

// GetByID retrieves a single product with its subproductos hydrated.
func (r *firestoreProductoRepository) GetByID(ctx context.Context, docID string) (*models.Producto, error) {
	if docID == "" {
		return nil, errors.New("docID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(productosCollection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("producto with ID '%s' not found: %w", docID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get producto with ID '%s': %w", docID, err)
	}

	var producto models.Producto
	if err := docSnap.DataTo(&producto); err != nil {
		return nil, fmt.Errorf("failed to decode producto data for ID '%s': %w", docID, err)
	}
	producto.DocID = docSnap.Ref.ID

	subs, err := r.ListSubproductos(ctx, docID)
	if err != nil {
		return nil, err
	}
	producto.Subproductos = subs

	return &producto, nil
}

// Create assigns the next sequential id, inserts the product with an
// auto-generated document ID, and returns that document ID. CreatedAt and
// UpdatedAt are server-assigned through the serverTimestamp tags.
func (r *firestoreProductoRepository) Create(ctx context.Context, producto *models.Producto) (string, error) {
	coll := r.client.Collection(productosCollection)
	id, err := nextID(ctx, coll)
	if err != nil {
		return "", err
	}
	producto.ID = id

	docRef := coll.NewDoc()
	producto.DocID = docRef.ID
	if _, err := docRef.Create(ctx, producto); err != nil {
		return "", fmt.Errorf("failed to create producto: %w", err)
	}
	return docRef.ID, nil
}

// Update merges the given fields into the product document and re-stamps
// updatedAt server-side.
func (r *firestoreProductoRepository) Update(ctx context.Context, docID string, fields map[string]any) error {
	if docID == "" {
		return errors.New("docID cannot be empty for Update operation")
	}
	fields["updatedAt"] = firestore.ServerTimestamp
	_, err := r.client.Collection(productosCollection).Doc(docID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update producto with ID '%s': %w", docID, err)
	}
	return nil
}

// Delete removes the product document only. The service layer must delete
// the subproductos subcollection first.
func (r *firestoreProductoRepository) Delete(ctx context.Context, docID string) error {
	if docID == "" {
		return errors.New("docID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(productosCollection).Doc(docID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete producto with ID '%s': %w", docID, err)
	}
	return nil
}

// ListSubproductos returns the subproductos of a product in insertion
// order (no explicit sort field exists on subproducts).
func (r *firestoreProductoRepository) ListSubproductos(ctx context.Context, productoDocID string) ([]*models.SubProducto, error) {
	if productoDocID == "" {
		return nil, errors.New("productoDocID cannot be empty for ListSubproductos operation")
	}
	iter := r.subColl(productoDocID).Documents(ctx)
	defer iter.Stop()

	var subs []*models.SubProducto
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate subproductos of '%s': %w", productoDocID, err)
		}

		var sub models.SubProducto
		if err := doc.DataTo(&sub); err != nil {
			return nil, fmt.Errorf("failed to decode subproducto '%s' of '%s': %w", doc.Ref.ID, productoDocID, err)
		}
		sub.DocID = doc.Ref.ID
		subs = append(subs, &sub)
	}
	return subs, nil
}

// CreateSubproducto assigns the next "sub-<n>" id scoped to the parent
// product and inserts the subproduct.
func (r *firestoreProductoRepository) CreateSubproducto(ctx context.Context, productoDocID string, sub *models.SubProducto) (string, error) {
	if productoDocID == "" {
		return "", errors.New("productoDocID cannot be empty for CreateSubproducto operation")
	}
	coll := r.subColl(productoDocID)
	n, err := nextSubID(ctx, coll)
	if err != nil {
		return "", err
	}
	sub.ID = fmt.Sprintf("sub-%d", n)

	docRef := coll.NewDoc()
	sub.DocID = docRef.ID
	if _, err := docRef.Create(ctx, sub); err != nil {
		return "", fmt.Errorf("failed to create subproducto under '%s': %w", productoDocID, err)
	}
	return docRef.ID, nil
}

// UpdateSubproducto merges the given fields into a subproduct document.
func (r *firestoreProductoRepository) UpdateSubproducto(ctx context.Context, productoDocID, subDocID string, fields map[string]any) error {
	if productoDocID == "" || subDocID == "" {
		return errors.New("productoDocID and subDocID cannot be empty for UpdateSubproducto operation")
	}
	fields["updatedAt"] = firestore.ServerTimestamp
	_, err := r.subColl(productoDocID).Doc(subDocID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update subproducto '%s' of '%s': %w", subDocID, productoDocID, err)
	}
	return nil
}

// DeleteSubproducto removes a single subproduct document.
func (r *firestoreProductoRepository) DeleteSubproducto(ctx context.Context, productoDocID, subDocID string) error {
	if productoDocID == "" || subDocID == "" {
		return errors.New("productoDocID and subDocID cannot be empty for DeleteSubproducto operation")
	}
	_, err := r.subColl(productoDocID).Doc(subDocID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete subproducto '%s' of '%s': %w", subDocID, productoDocID, err)
	}
	return nil
}
