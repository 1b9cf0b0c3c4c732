package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waterwises-admin-go/internal/core"
	"waterwises-admin-go/internal/models"
)

// AdminHandler handles API endpoints for admin-panel user management.
// Routes using it must be gated behind the admin role.
type AdminHandler struct {
	adminService core.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as core.AdminService) *AdminHandler {
	return &AdminHandler{adminService: as}
}

// ListAdminUsers handles GET /admin/users
func (h *AdminHandler) ListAdminUsers(c *gin.Context) {
	users, err := h.adminService.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateAdminUser handles POST /admin/users. Account creation is two
// steps (Firebase Auth, then the mirror record); a mirror failure leaves
// the Auth account in place and surfaces as an error.
func (h *AdminHandler) CreateAdminUser(c *gin.Context) {
	var req models.CreateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.adminService.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// DeleteAdminUser handles DELETE /admin/users/:docId
func (h *AdminHandler) DeleteAdminUser(c *gin.Context) {
	if err := h.adminService.Delete(c.Request.Context(), c.Param("docId")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Usuario eliminado"})
}
