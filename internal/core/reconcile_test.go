package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterwises-admin-go/internal/models"
)

func canonicalAlly() *models.Aliado {
	return &models.Aliado{DocID: "aliado-x2", Nombre: "X2 Solutions"}
}

func seedProducto(repo *fakeProductoRepo, p *models.Producto) {
	repo.productos[p.DocID] = p
	repo.order = append(repo.order, p.DocID)
}

func seedSubproducto(repo *fakeProductoRepo, productoDocID string, sub *models.SubProducto) {
	if repo.subs[productoDocID] == nil {
		repo.subs[productoDocID] = map[string]*models.SubProducto{}
	}
	repo.subs[productoDocID][sub.DocID] = sub
	repo.subOrder[productoDocID] = append(repo.subOrder[productoDocID], sub.DocID)
}

func TestReconcileFailsWithoutCanonicalAlly(t *testing.T) {
	r := NewReconciler(newFakeProductoRepo(), newFakeAliadoRepo(
		&models.Aliado{DocID: "a1", Nombre: "Otra Marca"},
	), nil)

	_, err := r.Run(context.Background())
	require.Error(t, err)
}

func TestReconcileCorrectsLegacyAlias(t *testing.T) {
	repo := newFakeProductoRepo()
	seedProducto(repo, &models.Producto{DocID: "p1", Nombre: "Filtro", Marca: "XS Solutions"})

	r := NewReconciler(repo, newFakeAliadoRepo(canonicalAlly()), nil)
	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ProductosActualizados)
	assert.Equal(t, "X2 Solutions", repo.productos["p1"].Marca)
	assert.Equal(t, "aliado-x2", repo.productos["p1"].AliadoID)
}

func TestReconcileAliasMatchIsContainsAndCaseInsensitive(t *testing.T) {
	repo := newFakeProductoRepo()
	seedProducto(repo, &models.Producto{DocID: "p1", Nombre: "Filtro", Marca: "Equipos xs solutions S.A."})

	r := NewReconciler(repo, newFakeAliadoRepo(canonicalAlly()), nil)
	_, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "X2 Solutions", repo.productos["p1"].Marca)
}

func TestReconcileFillsMissingReferenceByExactNombre(t *testing.T) {
	repo := newFakeProductoRepo()
	seedProducto(repo, &models.Producto{DocID: "p1", Nombre: "Filtro", Marca: "aqua pure"})

	r := NewReconciler(repo, newFakeAliadoRepo(
		canonicalAlly(),
		&models.Aliado{DocID: "aliado-ap", Nombre: "Aqua Pure"},
	), nil)
	_, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "aliado-ap", repo.productos["p1"].AliadoID)
	// The marca spelling is left alone on a rule-3 fill.
	assert.Equal(t, "aqua pure", repo.productos["p1"].Marca)
}

func TestReconcileLeavesResolvedProductsAlone(t *testing.T) {
	repo := newFakeProductoRepo()
	seedProducto(repo, &models.Producto{DocID: "p1", Nombre: "Filtro", Marca: "Aqua Pure", AliadoID: "aliado-ap"})

	r := NewReconciler(repo, newFakeAliadoRepo(
		canonicalAlly(),
		&models.Aliado{DocID: "aliado-ap", Nombre: "Aqua Pure"},
	), nil)
	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.ProductosActualizados)
	assert.Empty(t, repo.updatedDocs)
}

func TestReconcileSubproductosInheritParentReference(t *testing.T) {
	repo := newFakeProductoRepo()
	seedProducto(repo, &models.Producto{DocID: "p1", Nombre: "Filtro", Marca: "XS Solutions"})
	seedSubproducto(repo, "p1", &models.SubProducto{DocID: "s1", ID: "sub-1", Nombre: "Variante"})

	r := NewReconciler(repo, newFakeAliadoRepo(canonicalAlly()), nil)
	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	// The child inherits the parent's corrected reference even though the
	// parent's own write happened in the same pass.
	assert.Equal(t, 1, summary.SubproductosActualizados)
	sub := repo.subs["p1"]["s1"]
	assert.Equal(t, "aliado-x2", sub.AliadoID)
	assert.Equal(t, "X2 Solutions", sub.Marca)
}

func TestReconcileSubproductoOwnAliasBeatsInheritance(t *testing.T) {
	repo := newFakeProductoRepo()
	seedProducto(repo, &models.Producto{DocID: "p1", Nombre: "Filtro", Marca: "Aqua Pure", AliadoID: "aliado-ap"})
	seedSubproducto(repo, "p1", &models.SubProducto{DocID: "s1", ID: "sub-1", Nombre: "Variante", Marca: "XS Solutions"})

	r := NewReconciler(repo, newFakeAliadoRepo(
		canonicalAlly(),
		&models.Aliado{DocID: "aliado-ap", Nombre: "Aqua Pure"},
	), nil)
	_, err := r.Run(context.Background())
	require.NoError(t, err)

	// The legacy alias on the subproduct itself wins over inheriting the
	// parent's differing reference.
	sub := repo.subs["p1"]["s1"]
	assert.Equal(t, "aliado-x2", sub.AliadoID)
	assert.Equal(t, "X2 Solutions", sub.Marca)
}

func TestReconcileIsIdempotent(t *testing.T) {
	repo := newFakeProductoRepo()
	seedProducto(repo, &models.Producto{DocID: "p1", Nombre: "Filtro", Marca: "XS Solutions"})
	seedSubproducto(repo, "p1", &models.SubProducto{DocID: "s1", ID: "sub-1", Nombre: "Variante"})
	seedProducto(repo, &models.Producto{DocID: "p2", Nombre: "Bomba", Marca: "aqua pure"})

	aliados := newFakeAliadoRepo(
		canonicalAlly(),
		&models.Aliado{DocID: "aliado-ap", Nombre: "Aqua Pure"},
	)

	r := NewReconciler(repo, aliados, nil)
	first, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Positive(t, first.ProductosActualizados)

	repo.updatedDocs = nil
	repo.updatedSubDocs = nil

	second, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, second.ProductosActualizados, "converged pass rewrites nothing")
	assert.Zero(t, second.SubproductosActualizados)
	assert.Empty(t, repo.updatedDocs)
	assert.Empty(t, repo.updatedSubDocs)
}
