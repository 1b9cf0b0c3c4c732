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

const categoriasCollection = "categorias"

// firestoreCategoriaRepository implements CategoriaRepository using Firestore.
type firestoreCategoriaRepository struct {
	client *firestore.Client
}

// NewFirestoreCategoriaRepository creates a new CategoriaRepository backed
// by Firestore.
func NewFirestoreCategoriaRepository(client *firestore.Client) CategoriaRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for CategoriaRepository.")
	}
	return &firestoreCategoriaRepository{client: client}
}

func (r *firestoreCategoriaRepository) List(ctx context.Context) ([]*models.Categoria, error) {
	iter := r.client.Collection(categoriasCollection).OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var categorias []*models.Categoria
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate categorias: %w", err)
		}

		var categoria models.Categoria
		if err := doc.DataTo(&categoria); err != nil {
			return nil, fmt.Errorf("failed to decode categoria '%s': %w", doc.Ref.ID, err)
		}
		categoria.DocID = doc.Ref.ID
		categorias = append(categorias, &categoria)
	}
	return categorias, nil
}

func (r *firestoreCategoriaRepository) GetByID(ctx context.Context, docID string) (*models.Categoria, error) {
	if docID == "" {
		return nil, errors.New("docID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(categoriasCollection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("categoria with ID '%s' not found: %w", docID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get categoria with ID '%s': %w", docID, err)
	}

	var categoria models.Categoria
	if err := docSnap.DataTo(&categoria); err != nil {
		return nil, fmt.Errorf("failed to decode categoria data for ID '%s': %w", docID, err)
	}
	categoria.DocID = docSnap.Ref.ID
	return &categoria, nil
}

func (r *firestoreCategoriaRepository) Create(ctx context.Context, categoria *models.Categoria) (string, error) {
	coll := r.client.Collection(categoriasCollection)
	id, err := nextID(ctx, coll)
	if err != nil {
		return "", err
	}
	categoria.ID = id

	docRef := coll.NewDoc()
	categoria.DocID = docRef.ID
	if _, err := docRef.Create(ctx, categoria); err != nil {
		return "", fmt.Errorf("failed to create categoria: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreCategoriaRepository) Update(ctx context.Context, docID string, fields map[string]any) error {
	if docID == "" {
		return errors.New("docID cannot be empty for Update operation")
	}
	fields["updatedAt"] = firestore.ServerTimestamp
	_, err := r.client.Collection(categoriasCollection).Doc(docID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update categoria with ID '%s': %w", docID, err)
	}
	return nil
}

func (r *firestoreCategoriaRepository) Delete(ctx context.Context, docID string) error {
	if docID == "" {
		return errors.New("docID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(categoriasCollection).Doc(docID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete categoria with ID '%s': %w", docID, err)
	}
	return nil
}
