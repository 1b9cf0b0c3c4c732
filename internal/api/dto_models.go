package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"waterwises-admin-go/internal/core"
	"waterwises-admin-go/internal/db"
)

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// CreatedResponse returns the store-assigned document ID of a new entity.
type CreatedResponse struct {
	DocID string `json:"docId"`
}

// AssetResolution is the response of the asset preview endpoint.
type AssetResolution struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// mapServiceError translates service errors into HTTP responses. Store
// failures keep their message: the admin UI shows it and the operator
// retries by hand; there is no retry on this side.
func mapServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: err.Error()})
	case errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found", Details: err.Error()})
	case errors.Is(err, core.ErrAliadoNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrAliadoNotFound.Error(), Details: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "Store operation timed out", Details: err.Error()})
	default:
		log.Printf("Internal server error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Store operation failed", Details: err.Error()})
	}
}
