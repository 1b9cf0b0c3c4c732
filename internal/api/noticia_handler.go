package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waterwises-admin-go/internal/assets"
	"waterwises-admin-go/internal/core"
	"waterwises-admin-go/internal/models"
)

// NoticiaHandler handles API endpoints for news articles.
type NoticiaHandler struct {
	noticiaService core.NoticiaService
	resolver       *assets.Resolver
}

// NewNoticiaHandler creates a new NoticiaHandler.
func NewNoticiaHandler(ns core.NoticiaService, resolver *assets.Resolver) *NoticiaHandler {
	return &NoticiaHandler{noticiaService: ns, resolver: resolver}
}

// ListNoticias handles GET /noticias
func (h *NoticiaHandler) ListNoticias(c *gin.Context) {
	noticias, err := h.noticiaService.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, noticias)
}

// GetNoticia handles GET /noticias/:docId
func (h *NoticiaHandler) GetNoticia(c *gin.Context) {
	noticia, err := h.noticiaService.Get(c.Request.Context(), c.Param("docId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, noticia)
}

// CreateNoticia handles POST /noticias
func (h *NoticiaHandler) CreateNoticia(c *gin.Context) {
	var req models.NoticiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	noticia, err := h.noticiaService.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	for _, img := range noticia.Imagenes {
		h.resolver.CheckAsync(img)
	}

	c.JSON(http.StatusCreated, noticia)
}

// UpdateNoticia handles PUT /noticias/:docId
func (h *NoticiaHandler) UpdateNoticia(c *gin.Context) {
	var req models.NoticiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.noticiaService.Update(c.Request.Context(), c.Param("docId"), req); err != nil {
		mapServiceError(c, err)
		return
	}

	for _, img := range req.Imagenes {
		h.resolver.CheckAsync(img)
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Noticia actualizada"})
}

// DeleteNoticia handles DELETE /noticias/:docId
func (h *NoticiaHandler) DeleteNoticia(c *gin.Context) {
	if err := h.noticiaService.Delete(c.Request.Context(), c.Param("docId")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Noticia eliminada"})
}
