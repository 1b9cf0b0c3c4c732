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

const proyectosCollection = "proyectos"

// firestoreProyectoRepository implements ProyectoRepository using Firestore.
type firestoreProyectoRepository struct {
	client *firestore.Client
}

// NewFirestoreProyectoRepository creates a new ProyectoRepository backed by
// Firestore.
func NewFirestoreProyectoRepository(client *firestore.Client) ProyectoRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ProyectoRepository.")
	}
	return &firestoreProyectoRepository{client: client}
}

func (r *firestoreProyectoRepository) List(ctx context.Context) ([]*models.Proyecto, error) {
	iter := r.client.Collection(proyectosCollection).OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var proyectos []*models.Proyecto
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate proyectos: %w", err)
		}

		var proyecto models.Proyecto
		if err := doc.DataTo(&proyecto); err != nil {
			return nil, fmt.Errorf("failed to decode proyecto '%s': %w", doc.Ref.ID, err)
		}
		proyecto.DocID = doc.Ref.ID
		proyectos = append(proyectos, &proyecto)
	}
	return proyectos, nil
}

func (r *firestoreProyectoRepository) GetByID(ctx context.Context, docID string) (*models.Proyecto, error) {
	if docID == "" {
		return nil, errors.New("docID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(proyectosCollection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("proyecto with ID '%s' not found: %w", docID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get proyecto with ID '%s': %w", docID, err)
	}

	var proyecto models.Proyecto
	if err := docSnap.DataTo(&proyecto); err != nil {
		return nil, fmt.Errorf("failed to decode proyecto data for ID '%s': %w", docID, err)
	}
	proyecto.DocID = docSnap.Ref.ID
	return &proyecto, nil
}

func (r *firestoreProyectoRepository) Create(ctx context.Context, proyecto *models.Proyecto) (string, error) {
	coll := r.client.Collection(proyectosCollection)
	id, err := nextID(ctx, coll)
	if err != nil {
		return "", err
	}
	proyecto.ID = id

	docRef := coll.NewDoc()
	proyecto.DocID = docRef.ID
	if _, err := docRef.Create(ctx, proyecto); err != nil {
		return "", fmt.Errorf("failed to create proyecto: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreProyectoRepository) Update(ctx context.Context, docID string, fields map[string]any) error {
	if docID == "" {
		return errors.New("docID cannot be empty for Update operation")
	}
	fields["updatedAt"] = firestore.ServerTimestamp
	_, err := r.client.Collection(proyectosCollection).Doc(docID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update proyecto with ID '%s': %w", docID, err)
	}
	return nil
}

func (r *firestoreProyectoRepository) Delete(ctx context.Context, docID string) error {
	if docID == "" {
		return errors.New("docID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(proyectosCollection).Doc(docID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete proyecto with ID '%s': %w", docID, err)
	}
	return nil
}
