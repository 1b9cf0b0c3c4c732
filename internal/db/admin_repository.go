package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"waterwises-admin-go/internal/models"
)

const adminCollection = "admin"

// firestoreAdminRepository implements AdminRepository using Firestore. It
// holds the mirror records of Firebase Auth accounts allowed into the
// admin panel; the auth account itself is managed separately through the
// Auth client.
type firestoreAdminRepository struct {
	client *firestore.Client
}

// NewFirestoreAdminRepository creates a new AdminRepository backed by
// Firestore.
func NewFirestoreAdminRepository(client *firestore.Client) AdminRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for AdminRepository.")
	}
	return &firestoreAdminRepository{client: client}
}

func (r *firestoreAdminRepository) List(ctx context.Context) ([]*models.AdminUser, error) {
	iter := r.client.Collection(adminCollection).Documents(ctx)
	defer iter.Stop()

	var users []*models.AdminUser
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate admin users: %w", err)
		}

		var user models.AdminUser
		if err := doc.DataTo(&user); err != nil {
			return nil, fmt.Errorf("failed to decode admin user '%s': %w", doc.Ref.ID, err)
		}
		user.DocID = doc.Ref.ID
		users = append(users, &user)
	}
	return users, nil
}

// GetByUID finds the mirror record for a Firebase Auth UID. Used by the
// auth middleware for the role check on each request.
func (r *firestoreAdminRepository) GetByUID(ctx context.Context, uid string) (*models.AdminUser, error) {
	if uid == "" {
		return nil, errors.New("uid cannot be empty for GetByUID operation")
	}
	iter := r.client.Collection(adminCollection).Where("uid", "==", uid).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("admin user with uid '%s' not found: %w", uid, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query admin user by uid '%s': %w", uid, err)
	}

	var user models.AdminUser
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode admin user '%s': %w", doc.Ref.ID, err)
	}
	user.DocID = doc.Ref.ID
	return &user, nil
}

func (r *firestoreAdminRepository) Create(ctx context.Context, user *models.AdminUser) (string, error) {
	docRef := r.client.Collection(adminCollection).NewDoc()
	user.DocID = docRef.ID
	if _, err := docRef.Create(ctx, user); err != nil {
		return "", fmt.Errorf("failed to create admin user mirror record: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreAdminRepository) Delete(ctx context.Context, docID string) error {
	if docID == "" {
		return errors.New("docID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(adminCollection).Doc(docID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete admin user with ID '%s': %w", docID, err)
	}
	return nil
}
