package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waterwises-admin-go/internal/core"
	"waterwises-admin-go/internal/models"
)

// EmpresaHandler handles API endpoints for the company-info singleton.
type EmpresaHandler struct {
	empresaService core.EmpresaService
}

// NewEmpresaHandler creates a new EmpresaHandler.
func NewEmpresaHandler(es core.EmpresaService) *EmpresaHandler {
	return &EmpresaHandler{empresaService: es}
}

// GetEmpresa handles GET /empresa. The singleton is bootstrapped with
// default sections the first time it is read.
func (h *EmpresaHandler) GetEmpresa(c *gin.Context) {
	empresa, err := h.empresaService.Get(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, empresa)
}

// UpdateEmpresa handles PUT /empresa
func (h *EmpresaHandler) UpdateEmpresa(c *gin.Context) {
	var req models.EmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.empresaService.Update(c.Request.Context(), req); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Información de empresa actualizada"})
}
