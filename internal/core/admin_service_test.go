package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterwises-admin-go/internal/models"
)

func TestAdminCreateWritesAuthAccountThenMirror(t *testing.T) {
	repo := newFakeAdminRepo()
	creator := &fakeAuthCreator{}
	svc := NewAdminService(repo, creator, nil)

	user, err := svc.Create(context.Background(), models.CreateAdminUserRequest{
		Email:    "editor@waterwises.com",
		Password: "secret123",
		Role:     models.RoleEditor,
	})
	require.NoError(t, err)

	assert.Len(t, creator.created, 1)
	assert.Equal(t, creator.created[0], user.UID)
	assert.Equal(t, models.RoleEditor, user.Role)
	assert.NotEmpty(t, user.DocID)
	assert.Contains(t, repo.users, user.DocID)
}

func TestAdminCreateMirrorFailureKeepsAuthAccount(t *testing.T) {
	repo := newFakeAdminRepo()
	repo.createErr = errors.New("store unavailable")
	creator := &fakeAuthCreator{}
	svc := NewAdminService(repo, creator, nil)

	_, err := svc.Create(context.Background(), models.CreateAdminUserRequest{
		Email:    "editor@waterwises.com",
		Password: "secret123",
		Role:     models.RoleEditor,
	})
	require.Error(t, err)

	// No compensating delete: the auth account was created and stays.
	assert.Len(t, creator.created, 1)
	assert.Empty(t, repo.users)
}

func TestAdminCreateAuthFailureWritesNothing(t *testing.T) {
	repo := newFakeAdminRepo()
	creator := &fakeAuthCreator{err: errors.New("email already exists")}
	svc := NewAdminService(repo, creator, nil)

	_, err := svc.Create(context.Background(), models.CreateAdminUserRequest{
		Email:    "editor@waterwises.com",
		Password: "secret123",
		Role:     models.RoleEditor,
	})
	require.Error(t, err)
	assert.Empty(t, repo.users)
}

func TestAdminCreateValidation(t *testing.T) {
	svc := NewAdminService(newFakeAdminRepo(), &fakeAuthCreator{}, nil)
	ctx := context.Background()

	cases := []models.CreateAdminUserRequest{
		{Password: "secret123", Role: models.RoleAdmin},               // missing email
		{Email: "a@b.com", Password: "short", Role: models.RoleAdmin}, // short password
		{Email: "a@b.com", Password: "secret123", Role: "superuser"},  // unknown role
		{Email: "a@b.com", Password: "secret123", Role: ""},           // missing role
	}
	for _, req := range cases {
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrValidation)
	}
}
