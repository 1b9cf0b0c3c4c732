package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waterwises-admin-go/internal/core"
	"waterwises-admin-go/internal/models"
)

// AliadoHandler handles API endpoints for allies.
type AliadoHandler struct {
	aliadoService core.AliadoService
}

// NewAliadoHandler creates a new AliadoHandler.
func NewAliadoHandler(as core.AliadoService) *AliadoHandler {
	return &AliadoHandler{aliadoService: as}
}

// ListAliados handles GET /aliados
func (h *AliadoHandler) ListAliados(c *gin.Context) {
	aliados, err := h.aliadoService.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, aliados)
}

// GetAliado handles GET /aliados/:docId
func (h *AliadoHandler) GetAliado(c *gin.Context) {
	aliado, err := h.aliadoService.Get(c.Request.Context(), c.Param("docId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, aliado)
}

// CreateAliado handles POST /aliados
func (h *AliadoHandler) CreateAliado(c *gin.Context) {
	var req models.AliadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	aliado, err := h.aliadoService.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, aliado)
}

// UpdateAliado handles PUT /aliados/:docId
func (h *AliadoHandler) UpdateAliado(c *gin.Context) {
	var req models.AliadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.aliadoService.Update(c.Request.Context(), c.Param("docId"), req); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Aliado actualizado"})
}

// DeleteAliado handles DELETE /aliados/:docId
func (h *AliadoHandler) DeleteAliado(c *gin.Context) {
	if err := h.aliadoService.Delete(c.Request.Context(), c.Param("docId")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Aliado eliminado"})
}
