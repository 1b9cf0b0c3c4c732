package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waterwises-admin-go/internal/assets"
)

// AssetHandler resolves site-relative asset paths for admin-UI previews.
type AssetHandler struct {
	resolver *assets.Resolver
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(resolver *assets.Resolver) *AssetHandler {
	return &AssetHandler{resolver: resolver}
}

// ResolveAsset handles GET /assets/resolve?path=/assets/Productos/x.jpg
func (h *AssetHandler) ResolveAsset(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameter 'path' is required"})
		return
	}

	c.JSON(http.StatusOK, AssetResolution{
		Path: path,
		URL:  h.resolver.AbsoluteURL(path),
	})
}
