package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterwises-admin-go/internal/assets"
	"waterwises-admin-go/internal/core"
	"waterwises-admin-go/internal/db"
	"waterwises-admin-go/internal/models"
)

// fakeProductoService returns canned values; the handler tests only cover
// binding, routing, and the error-to-status mapping.
type fakeProductoService struct {
	productos []*models.Producto
	err       error
}

func (f *fakeProductoService) List(context.Context) ([]*models.Producto, error) {
	return f.productos, f.err
}

func (f *fakeProductoService) Get(_ context.Context, docID string) (*models.Producto, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.productos {
		if p.DocID == docID {
			return p, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeProductoService) Create(_ context.Context, req models.ProductoRequest) (*models.Producto, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Producto{DocID: "prod-doc-1", ID: 1, Nombre: req.Nombre}, nil
}

func (f *fakeProductoService) Update(context.Context, string, models.ProductoRequest) error {
	return f.err
}

func (f *fakeProductoService) Delete(context.Context, string) error { return f.err }

func (f *fakeProductoService) SetAliado(context.Context, string, string) error { return f.err }

func (f *fakeProductoService) ListSubproductos(context.Context, string) ([]*models.SubProducto, error) {
	return nil, f.err
}

func (f *fakeProductoService) CreateSubproducto(context.Context, string, models.SubProductoRequest) (*models.SubProducto, error) {
	return &models.SubProducto{DocID: "doc-sub-1", ID: "sub-1"}, f.err
}

func (f *fakeProductoService) UpdateSubproducto(context.Context, string, string, models.SubProductoRequest) error {
	return f.err
}

func (f *fakeProductoService) DeleteSubproducto(context.Context, string, string) error {
	return f.err
}

func (f *fakeProductoService) SetSubproductoAliado(context.Context, string, string, string) error {
	return f.err
}

func newProductoRouter(svc *fakeProductoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewProductoHandler(svc, assets.NewResolver("https://waterwises.com", nil))
	router.GET("/productos", h.ListProductos)
	router.GET("/productos/:docId", h.GetProducto)
	router.POST("/productos", h.CreateProducto)
	router.PUT("/productos/:docId/aliado", h.SetAliado)
	return router
}

func TestListProductosOK(t *testing.T) {
	router := newProductoRouter(&fakeProductoService{
		productos: []*models.Producto{{DocID: "p1", ID: 1, Nombre: "Filtro"}},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/productos", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.Producto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Filtro", got[0].Nombre)
}

func TestGetProductoNotFound(t *testing.T) {
	router := newProductoRouter(&fakeProductoService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/productos/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProductoRejectsMissingNombre(t *testing.T) {
	router := newProductoRouter(&fakeProductoService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/productos", strings.NewReader(`{"descripcion":"sin nombre"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductoOK(t *testing.T) {
	router := newProductoRouter(&fakeProductoService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/productos", strings.NewReader(`{"nombre":"Filtro"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var got models.Producto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.ID)
}

func TestValidationErrorMapsTo400(t *testing.T) {
	router := newProductoRouter(&fakeProductoService{
		err: fmt.Errorf("%w: nombre is required", core.ErrValidation),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/productos", strings.NewReader(`{"nombre":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownAliadoMapsTo404(t *testing.T) {
	router := newProductoRouter(&fakeProductoService{
		err: fmt.Errorf("%w: 'missing'", core.ErrAliadoNotFound),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/productos/p1/aliado", strings.NewReader(`{"aliadoDocId":"missing"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStoreFailureMapsTo500(t *testing.T) {
	router := newProductoRouter(&fakeProductoService{
		err: fmt.Errorf("firestore: connection reset"),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/productos", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
