package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterwises-admin-go/internal/models"
)

func TestProductoCreateAssignsSequentialIDs(t *testing.T) {
	repo := newFakeProductoRepo()
	svc := NewProductoService(repo, newFakeAliadoRepo())
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		p, err := svc.Create(ctx, models.ProductoRequest{Nombre: fmt.Sprintf("Producto %d", i)})
		require.NoError(t, err)
		assert.Equal(t, i, p.ID)
		assert.NotEmpty(t, p.DocID)
	}
}

func TestProductoCreateDerivesSlug(t *testing.T) {
	repo := newFakeProductoRepo()
	svc := NewProductoService(repo, newFakeAliadoRepo())

	p, err := svc.Create(context.Background(), models.ProductoRequest{Nombre: "Planta de Ósmosis Inversa"})
	require.NoError(t, err)
	assert.Equal(t, "planta-de-osmosis-inversa", p.Slug)
}

func TestProductoCreateRequiresNombre(t *testing.T) {
	svc := NewProductoService(newFakeProductoRepo(), newFakeAliadoRepo())

	_, err := svc.Create(context.Background(), models.ProductoRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubproductoIDsScopedToParent(t *testing.T) {
	repo := newFakeProductoRepo()
	svc := NewProductoService(repo, newFakeAliadoRepo())
	ctx := context.Background()

	p1, err := svc.Create(ctx, models.ProductoRequest{Nombre: "Filtro"})
	require.NoError(t, err)
	p2, err := svc.Create(ctx, models.ProductoRequest{Nombre: "Bomba"})
	require.NoError(t, err)

	s1, err := svc.CreateSubproducto(ctx, p1.DocID, models.SubProductoRequest{Nombre: "Filtro A"})
	require.NoError(t, err)
	s2, err := svc.CreateSubproducto(ctx, p1.DocID, models.SubProductoRequest{Nombre: "Filtro B"})
	require.NoError(t, err)
	// Each parent's sequence starts over.
	other, err := svc.CreateSubproducto(ctx, p2.DocID, models.SubProductoRequest{Nombre: "Bomba A"})
	require.NoError(t, err)

	assert.Equal(t, "sub-1", s1.ID)
	assert.Equal(t, "sub-2", s2.ID)
	assert.Equal(t, "sub-1", other.ID)
}

func TestCreateSubproductoRequiresParent(t *testing.T) {
	svc := NewProductoService(newFakeProductoRepo(), newFakeAliadoRepo())

	_, err := svc.CreateSubproducto(context.Background(), "missing", models.SubProductoRequest{Nombre: "X"})
	assert.Error(t, err)
}

func TestDeleteCascadesSubproductos(t *testing.T) {
	repo := newFakeProductoRepo()
	svc := NewProductoService(repo, newFakeAliadoRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, models.ProductoRequest{Nombre: "Filtro"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := svc.CreateSubproducto(ctx, p.DocID, models.SubProductoRequest{Nombre: fmt.Sprintf("Variante %d", i)})
		require.NoError(t, err)
	}

	require.NoError(t, svc.Delete(ctx, p.DocID))

	assert.Empty(t, repo.subs[p.DocID])
	assert.NotContains(t, repo.productos, p.DocID)
}

func TestDeleteAbortsWhenSubDeleteFails(t *testing.T) {
	repo := newFakeProductoRepo()
	svc := NewProductoService(repo, newFakeAliadoRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, models.ProductoRequest{Nombre: "Filtro"})
	require.NoError(t, err)
	s1, err := svc.CreateSubproducto(ctx, p.DocID, models.SubProductoRequest{Nombre: "A"})
	require.NoError(t, err)
	s2, err := svc.CreateSubproducto(ctx, p.DocID, models.SubProductoRequest{Nombre: "B"})
	require.NoError(t, err)

	repo.subDeleteErr[s2.DocID] = errors.New("store unavailable")

	err = svc.Delete(ctx, p.DocID)
	require.Error(t, err)

	// The parent document survives a partial cascade; subproducts removed
	// before the failure stay removed.
	assert.Contains(t, repo.productos, p.DocID)
	assert.NotContains(t, repo.subs[p.DocID], s1.DocID)
	assert.Contains(t, repo.subs[p.DocID], s2.DocID)
}

func TestSetAliadoWritesReferenceAndMarcaTogether(t *testing.T) {
	repo := newFakeProductoRepo()
	aliados := newFakeAliadoRepo(&models.Aliado{DocID: "aliado-1", Nombre: "X2 Solutions"})
	svc := NewProductoService(repo, aliados)
	ctx := context.Background()

	p, err := svc.Create(ctx, models.ProductoRequest{Nombre: "Filtro", Marca: "otra marca"})
	require.NoError(t, err)

	require.NoError(t, svc.SetAliado(ctx, p.DocID, "aliado-1"))

	assert.Equal(t, "aliado-1", repo.productos[p.DocID].AliadoID)
	assert.Equal(t, "X2 Solutions", repo.productos[p.DocID].Marca)
}

func TestSetAliadoUnknownAlly(t *testing.T) {
	repo := newFakeProductoRepo()
	svc := NewProductoService(repo, newFakeAliadoRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, models.ProductoRequest{Nombre: "Filtro"})
	require.NoError(t, err)

	err = svc.SetAliado(ctx, p.DocID, "missing")
	assert.ErrorIs(t, err, ErrAliadoNotFound)
	assert.Empty(t, repo.updatedDocs, "no partial write on a failed resolution")
}

func TestSetSubproductoAliado(t *testing.T) {
	repo := newFakeProductoRepo()
	aliados := newFakeAliadoRepo(&models.Aliado{DocID: "aliado-1", Nombre: "X2 Solutions"})
	svc := NewProductoService(repo, aliados)
	ctx := context.Background()

	p, err := svc.Create(ctx, models.ProductoRequest{Nombre: "Filtro"})
	require.NoError(t, err)
	sub, err := svc.CreateSubproducto(ctx, p.DocID, models.SubProductoRequest{Nombre: "Variante"})
	require.NoError(t, err)

	require.NoError(t, svc.SetSubproductoAliado(ctx, p.DocID, sub.DocID, "aliado-1"))

	stored := repo.subs[p.DocID][sub.DocID]
	assert.Equal(t, "aliado-1", stored.AliadoID)
	assert.Equal(t, "X2 Solutions", stored.Marca)
}
