package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waterwises-admin-go/internal/core"
	"waterwises-admin-go/internal/models"
)

// CategoriaHandler handles API endpoints for categories.
type CategoriaHandler struct {
	categoriaService core.CategoriaService
}

// NewCategoriaHandler creates a new CategoriaHandler.
func NewCategoriaHandler(cs core.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{categoriaService: cs}
}

// ListCategorias handles GET /categorias
func (h *CategoriaHandler) ListCategorias(c *gin.Context) {
	categorias, err := h.categoriaService.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categorias)
}

// GetCategoria handles GET /categorias/:docId
func (h *CategoriaHandler) GetCategoria(c *gin.Context) {
	categoria, err := h.categoriaService.Get(c.Request.Context(), c.Param("docId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoria)
}

// CreateCategoria handles POST /categorias
func (h *CategoriaHandler) CreateCategoria(c *gin.Context) {
	var req models.CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	categoria, err := h.categoriaService.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoria)
}

// UpdateCategoria handles PUT /categorias/:docId
func (h *CategoriaHandler) UpdateCategoria(c *gin.Context) {
	var req models.CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.categoriaService.Update(c.Request.Context(), c.Param("docId"), req); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Categoría actualizada"})
}

// DeleteCategoria handles DELETE /categorias/:docId
func (h *CategoriaHandler) DeleteCategoria(c *gin.Context) {
	if err := h.categoriaService.Delete(c.Request.Context(), c.Param("docId")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Categoría eliminada"})
}
