package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"waterwises-admin-go/internal/models"
)

const empresaCollection = "empresa"

// firestoreEmpresaRepository implements EmpresaRepository using Firestore.
// The company info lives in a single document with the well-known ID
// models.EmpresaDocID.
type firestoreEmpresaRepository struct {
	client *firestore.Client
}

// NewFirestoreEmpresaRepository creates a new EmpresaRepository backed by
// Firestore.
func NewFirestoreEmpresaRepository(client *firestore.Client) EmpresaRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for EmpresaRepository.")
	}
	return &firestoreEmpresaRepository{client: client}
}

func (r *firestoreEmpresaRepository) doc() *firestore.DocumentRef {
	return r.client.Collection(empresaCollection).Doc(models.EmpresaDocID)
}

func (r *firestoreEmpresaRepository) Get(ctx context.Context) (*models.Empresa, error) {
	docSnap, err := r.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("empresa document not found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get empresa document: %w", err)
	}

	var empresa models.Empresa
	if err := docSnap.DataTo(&empresa); err != nil {
		return nil, fmt.Errorf("failed to decode empresa data: %w", err)
	}
	empresa.DocID = docSnap.Ref.ID
	return &empresa, nil
}

// Create writes the singleton document for the first time.
func (r *firestoreEmpresaRepository) Create(ctx context.Context, empresa *models.Empresa) error {
	if empresa == nil {
		return errors.New("empresa cannot be nil for Create operation")
	}
	empresa.DocID = models.EmpresaDocID
	if _, err := r.doc().Create(ctx, empresa); err != nil {
		return fmt.Errorf("failed to create empresa document: %w", err)
	}
	return nil
}

// Update merges the given sections into the singleton document and
// re-stamps updatedAt server-side.
func (r *firestoreEmpresaRepository) Update(ctx context.Context, fields map[string]any) error {
	fields["updatedAt"] = firestore.ServerTimestamp
	if _, err := r.doc().Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update empresa document: %w", err)
	}
	return nil
}
