package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterwises-admin-go/internal/models"
)

func TestEmpresaGetBootstrapsDefaults(t *testing.T) {
	repo := &fakeEmpresaRepo{}
	svc := NewEmpresaService(repo)

	empresa, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Sobre Nosotros", empresa.SobreNosotros.Titulo)
	assert.Equal(t, "MISIÓN", empresa.Mision.Titulo)
	assert.Equal(t, "VISIÓN", empresa.Vision.Titulo)
	assert.Equal(t, "NUESTRO OBJETIVO", empresa.Objetivos.Titulo)
	assert.NotNil(t, repo.doc, "defaults are persisted, not just returned")
}

func TestEmpresaGetReturnsExistingDocument(t *testing.T) {
	repo := &fakeEmpresaRepo{doc: &models.Empresa{
		SobreNosotros: models.SeccionEmpresa{Titulo: "Sobre Nosotros", Texto: "texto editado"},
	}}
	svc := NewEmpresaService(repo)

	empresa, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "texto editado", empresa.SobreNosotros.Texto)
}

func TestEmpresaGetPropagatesStoreErrors(t *testing.T) {
	repo := &fakeEmpresaRepo{getErr: errors.New("store unavailable")}
	svc := NewEmpresaService(repo)

	_, err := svc.Get(context.Background())
	require.Error(t, err)
	assert.Nil(t, repo.doc, "a transient read failure must not trigger the bootstrap")
}

func TestEmpresaUpdateMergesSections(t *testing.T) {
	repo := &fakeEmpresaRepo{doc: models.DefaultEmpresa()}
	svc := NewEmpresaService(repo)

	err := svc.Update(context.Background(), models.EmpresaRequest{
		SobreNosotros: models.SeccionEmpresa{Titulo: "Sobre Nosotros", Texto: "nuevo texto"},
		Mision:        models.SeccionEmpresa{Titulo: "MISIÓN", Texto: "nuestra misión"},
	})
	require.NoError(t, err)

	assert.Equal(t, "nuevo texto", repo.doc.SobreNosotros.Texto)
	assert.Equal(t, "nuestra misión", repo.doc.Mision.Texto)
}
