package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waterwises-admin-go/internal/middleware"
)

// Handlers bundles every handler wired into the router.
type Handlers struct {
	Producto  *ProductoHandler
	Aliado    *AliadoHandler
	Categoria *CategoriaHandler
	Noticia   *NoticiaHandler
	Proyecto  *ProyectoHandler
	Empresa   *EmpresaHandler
	Admin     *AdminHandler
	Asset     *AssetHandler
}

// SetupRoutes configures all API routes. Everything under /api/v1 requires
// a verified Firebase token plus an admin-mirror record; user management
// additionally requires the admin role.
func SetupRoutes(router *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.VerifyToken())
	{
		productos := v1.Group("/productos")
		{
			productos.GET("", h.Producto.ListProductos)
			productos.POST("", h.Producto.CreateProducto)
			productos.GET("/:docId", h.Producto.GetProducto)
			productos.PUT("/:docId", h.Producto.UpdateProducto)
			productos.DELETE("/:docId", h.Producto.DeleteProducto)
			productos.PUT("/:docId/aliado", h.Producto.SetAliado)

			productos.GET("/:docId/subproductos", h.Producto.ListSubproductos)
			productos.POST("/:docId/subproductos", h.Producto.CreateSubproducto)
			productos.PUT("/:docId/subproductos/:subDocId", h.Producto.UpdateSubproducto)
			productos.DELETE("/:docId/subproductos/:subDocId", h.Producto.DeleteSubproducto)
			productos.PUT("/:docId/subproductos/:subDocId/aliado", h.Producto.SetSubproductoAliado)
		}

		aliados := v1.Group("/aliados")
		{
			aliados.GET("", h.Aliado.ListAliados)
			aliados.POST("", h.Aliado.CreateAliado)
			aliados.GET("/:docId", h.Aliado.GetAliado)
			aliados.PUT("/:docId", h.Aliado.UpdateAliado)
			aliados.DELETE("/:docId", h.Aliado.DeleteAliado)
		}

		categorias := v1.Group("/categorias")
		{
			categorias.GET("", h.Categoria.ListCategorias)
			categorias.POST("", h.Categoria.CreateCategoria)
			categorias.GET("/:docId", h.Categoria.GetCategoria)
			categorias.PUT("/:docId", h.Categoria.UpdateCategoria)
			categorias.DELETE("/:docId", h.Categoria.DeleteCategoria)
		}

		noticias := v1.Group("/noticias")
		{
			noticias.GET("", h.Noticia.ListNoticias)
			noticias.POST("", h.Noticia.CreateNoticia)
			noticias.GET("/:docId", h.Noticia.GetNoticia)
			noticias.PUT("/:docId", h.Noticia.UpdateNoticia)
			noticias.DELETE("/:docId", h.Noticia.DeleteNoticia)
		}

		proyectos := v1.Group("/proyectos")
		{
			proyectos.GET("", h.Proyecto.ListProyectos)
			proyectos.POST("", h.Proyecto.CreateProyecto)
			proyectos.GET("/:docId", h.Proyecto.GetProyecto)
			proyectos.PUT("/:docId", h.Proyecto.UpdateProyecto)
			proyectos.DELETE("/:docId", h.Proyecto.DeleteProyecto)
		}

		empresa := v1.Group("/empresa")
		{
			empresa.GET("", h.Empresa.GetEmpresa)
			empresa.PUT("", h.Empresa.UpdateEmpresa)
		}

		assets := v1.Group("/assets")
		{
			assets.GET("/resolve", h.Asset.ResolveAsset)
		}

		adminUsers := v1.Group("/admin/users")
		adminUsers.Use(authMiddleware.RequireAdmin())
		{
			adminUsers.GET("", h.Admin.ListAdminUsers)
			adminUsers.POST("", h.Admin.CreateAdminUser)
			adminUsers.DELETE("/:docId", h.Admin.DeleteAdminUser)
		}
	}
}
