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

const aliadosCollection = "aliados"

// firestoreAliadoRepository implements AliadoRepository using Firestore.
type firestoreAliadoRepository struct {
	client *firestore.Client
}

// NewFirestoreAliadoRepository creates a new AliadoRepository backed by
// Firestore.
func NewFirestoreAliadoRepository(client *firestore.Client) AliadoRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for AliadoRepository.")
	}
	return &firestoreAliadoRepository{client: client}
}

// List returns all allies ordered by id ascending.
func (r *firestoreAliadoRepository) List(ctx context.Context) ([]*models.Aliado, error) {
	iter := r.client.Collection(aliadosCollection).OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var aliados []*models.Aliado
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate aliados: %w", err)
		}

		var aliado models.Aliado
		if err := doc.DataTo(&aliado); err != nil {
			return nil, fmt.Errorf("failed to decode aliado '%s': %w", doc.Ref.ID, err)
		}
		aliado.DocID = doc.Ref.ID
		aliados = append(aliados, &aliado)
	}
	return aliados, nil
}

func (r *firestoreAliadoRepository) GetByID(ctx context.Context, docID string) (*models.Aliado, error) {
	if docID == "" {
		return nil, errors.New("docID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(aliadosCollection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("aliado with ID '%s' not found: %w", docID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get aliado with ID '%s': %w", docID, err)
	}

	var aliado models.Aliado
	if err := docSnap.DataTo(&aliado); err != nil {
		return nil, fmt.Errorf("failed to decode aliado data for ID '%s': %w", docID, err)
	}
	aliado.DocID = docSnap.Ref.ID
	return &aliado, nil
}

func (r *firestoreAliadoRepository) Create(ctx context.Context, aliado *models.Aliado) (string, error) {
	coll := r.client.Collection(aliadosCollection)
	id, err := nextID(ctx, coll)
	if err != nil {
		return "", err
	}
	aliado.ID = id

	docRef := coll.NewDoc()
	aliado.DocID = docRef.ID
	if _, err := docRef.Create(ctx, aliado); err != nil {
		return "", fmt.Errorf("failed to create aliado: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreAliadoRepository) Update(ctx context.Context, docID string, fields map[string]any) error {
	if docID == "" {
		return errors.New("docID cannot be empty for Update operation")
	}
	fields["updatedAt"] = firestore.ServerTimestamp
	_, err := r.client.Collection(aliadosCollection).Doc(docID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update aliado with ID '%s': %w", docID, err)
	}
	return nil
}

func (r *firestoreAliadoRepository) Delete(ctx context.Context, docID string) error {
	if docID == "" {
		return errors.New("docID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(aliadosCollection).Doc(docID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete aliado with ID '%s': %w", docID, err)
	}
	return nil
}
