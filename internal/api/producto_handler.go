package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waterwises-admin-go/internal/assets"
	"waterwises-admin-go/internal/core"
	"waterwises-admin-go/internal/models"
)

// ProductoHandler handles API endpoints for products and their nested
// subproducts.
type ProductoHandler struct {
	productoService core.ProductoService
	resolver        *assets.Resolver
}

// NewProductoHandler creates a new ProductoHandler.
func NewProductoHandler(ps core.ProductoService, resolver *assets.Resolver) *ProductoHandler {
	return &ProductoHandler{productoService: ps, resolver: resolver}
}

// ListProductos handles GET /productos
func (h *ProductoHandler) ListProductos(c *gin.Context) {
	productos, err := h.productoService.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, productos)
}

// GetProducto handles GET /productos/:docId
func (h *ProductoHandler) GetProducto(c *gin.Context) {
	producto, err := h.productoService.Get(c.Request.Context(), c.Param("docId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, producto)
}

// CreateProducto handles POST /productos
func (h *ProductoHandler) CreateProducto(c *gin.Context) {
	var req models.ProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	producto, err := h.productoService.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	// Preview probe only; never blocks or fails the write.
	h.resolver.CheckAsync(producto.Imagen)

	c.JSON(http.StatusCreated, producto)
}

// UpdateProducto handles PUT /productos/:docId
func (h *ProductoHandler) UpdateProducto(c *gin.Context) {
	var req models.ProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.productoService.Update(c.Request.Context(), c.Param("docId"), req); err != nil {
		mapServiceError(c, err)
		return
	}

	h.resolver.CheckAsync(req.Imagen)

	c.JSON(http.StatusOK, SuccessResponse{Message: "Producto actualizado"})
}

// DeleteProducto handles DELETE /productos/:docId
func (h *ProductoHandler) DeleteProducto(c *gin.Context) {
	if err := h.productoService.Delete(c.Request.Context(), c.Param("docId")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Producto eliminado"})
}

// SetAliado handles PUT /productos/:docId/aliado
func (h *ProductoHandler) SetAliado(c *gin.Context) {
	var req models.SetAliadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.productoService.SetAliado(c.Request.Context(), c.Param("docId"), req.AliadoDocID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Aliado asignado"})
}

// ListSubproductos handles GET /productos/:docId/subproductos
func (h *ProductoHandler) ListSubproductos(c *gin.Context) {
	subs, err := h.productoService.ListSubproductos(c.Request.Context(), c.Param("docId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// CreateSubproducto handles POST /productos/:docId/subproductos
func (h *ProductoHandler) CreateSubproducto(c *gin.Context) {
	var req models.SubProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	sub, err := h.productoService.CreateSubproducto(c.Request.Context(), c.Param("docId"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// UpdateSubproducto handles PUT /productos/:docId/subproductos/:subDocId
func (h *ProductoHandler) UpdateSubproducto(c *gin.Context) {
	var req models.SubProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.productoService.UpdateSubproducto(c.Request.Context(), c.Param("docId"), c.Param("subDocId"), req); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Subproducto actualizado"})
}

// DeleteSubproducto handles DELETE /productos/:docId/subproductos/:subDocId
func (h *ProductoHandler) DeleteSubproducto(c *gin.Context) {
	if err := h.productoService.DeleteSubproducto(c.Request.Context(), c.Param("docId"), c.Param("subDocId")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Subproducto eliminado"})
}

// SetSubproductoAliado handles PUT /productos/:docId/subproductos/:subDocId/aliado
func (h *ProductoHandler) SetSubproductoAliado(c *gin.Context) {
	var req models.SetAliadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.productoService.SetSubproductoAliado(c.Request.Context(), c.Param("docId"), c.Param("subDocId"), req.AliadoDocID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Aliado asignado"})
}
