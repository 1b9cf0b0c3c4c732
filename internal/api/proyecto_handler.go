package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waterwises-admin-go/internal/core"
	"waterwises-admin-go/internal/models"
)

// ProyectoHandler handles API endpoints for projects.
type ProyectoHandler struct {
	proyectoService core.ProyectoService
}

// NewProyectoHandler creates a new ProyectoHandler.
func NewProyectoHandler(ps core.ProyectoService) *ProyectoHandler {
	return &ProyectoHandler{proyectoService: ps}
}

// ListProyectos handles GET /proyectos
func (h *ProyectoHandler) ListProyectos(c *gin.Context) {
	proyectos, err := h.proyectoService.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proyectos)
}

// GetProyecto handles GET /proyectos/:docId
func (h *ProyectoHandler) GetProyecto(c *gin.Context) {
	proyecto, err := h.proyectoService.Get(c.Request.Context(), c.Param("docId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proyecto)
}

// CreateProyecto handles POST /proyectos
func (h *ProyectoHandler) CreateProyecto(c *gin.Context) {
	var req models.ProyectoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	proyecto, err := h.proyectoService.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proyecto)
}

// UpdateProyecto handles PUT /proyectos/:docId
func (h *ProyectoHandler) UpdateProyecto(c *gin.Context) {
	var req models.ProyectoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.proyectoService.Update(c.Request.Context(), c.Param("docId"), req); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Proyecto actualizado"})
}

// DeleteProyecto handles DELETE /proyectos/:docId
func (h *ProyectoHandler) DeleteProyecto(c *gin.Context) {
	if err := h.proyectoService.Delete(c.Request.Context(), c.Param("docId")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Proyecto eliminado"})
}
