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

const noticiasCollection = "noticias"

// firestoreNoticiaRepository implements NoticiaRepository using Firestore.
type firestoreNoticiaRepository struct {
	client *firestore.Client
}

// NewFirestoreNoticiaRepository creates a new NoticiaRepository backed by
// Firestore.
func NewFirestoreNoticiaRepository(client *firestore.Client) NoticiaRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for NoticiaRepository.")
	}
	return &firestoreNoticiaRepository{client: client}
}

// List returns all news entries newest-first (id descending).
func (r *firestoreNoticiaRepository) List(ctx context.Context) ([]*models.Noticia, error) {
	iter := r.client.Collection(noticiasCollection).OrderBy("id", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var noticias []*models.Noticia
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate noticias: %w", err)
		}

		var noticia models.Noticia
		if err := doc.DataTo(&noticia); err != nil {
			return nil, fmt.Errorf("failed to decode noticia '%s': %w", doc.Ref.ID, err)
		}
		noticia.DocID = doc.Ref.ID
		noticias = append(noticias, &noticia)
	}
	return noticias, nil
}

func (r *firestoreNoticiaRepository) GetByID(ctx context.Context, docID string) (*models.Noticia, error) {
	if docID == "" {
		return nil, errors.New("docID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(noticiasCollection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("noticia with ID '%s' not found: %w", docID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get noticia with ID '%s': %w", docID, err)
	}

	var noticia models.Noticia
	if err := docSnap.DataTo(&noticia); err != nil {
		return nil, fmt.Errorf("failed to decode noticia data for ID '%s': %w", docID, err)
	}
	noticia.DocID = docSnap.Ref.ID
	return &noticia, nil
}

func (r *firestoreNoticiaRepository) Create(ctx context.Context, noticia *models.Noticia) (string, error) {
	coll := r.client.Collection(noticiasCollection)
	id, err := nextID(ctx, coll)
	if err != nil {
		return "", err
	}
	noticia.ID = id

	docRef := coll.NewDoc()
	noticia.DocID = docRef.ID
	if _, err := docRef.Create(ctx, noticia); err != nil {
		return "", fmt.Errorf("failed to create noticia: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreNoticiaRepository) Update(ctx context.Context, docID string, fields map[string]any) error {
	if docID == "" {
		return errors.New("docID cannot be empty for Update operation")
	}
	fields["updatedAt"] = firestore.ServerTimestamp
	_, err := r.client.Collection(noticiasCollection).Doc(docID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update noticia with ID '%s': %w", docID, err)
	}
	return nil
}

func (r *firestoreNoticiaRepository) Delete(ctx context.Context, docID string) error {
	if docID == "" {
		return errors.New("docID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(noticiasCollection).Doc(docID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete noticia with ID '%s': %w", docID, err)
	}
	return nil
}
