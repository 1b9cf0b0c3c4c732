package db

import (
	"context"

	"waterwises-admin-go/internal/models"
)

// Update operations take a field map rather than a typed model: the admin
// forms submit their full field set, the repository merges it into the
// existing document and re-stamps updatedAt, and createdAt is never
// touched after the initial write.

// ProductoRepository defines storage operations for products and the
// subproductos subcollection nested under each product document.
//
// Delete removes the product document only. Cascading the subproducto
// deletes first is the service layer's responsibility, since Firestore has
// no native cascading delete for subcollections.
type ProductoRepository interface {
	List(ctx context.Context) ([]*models.Producto, error)
	GetByID(ctx context.Context, docID string) (*models.Producto, error)
	Create(ctx context.Context, producto *models.Producto) (string, error)
	Update(ctx context.Context, docID string, fields map[string]any) error
	Delete(ctx context.Context, docID string) error

	ListSubproductos(ctx context.Context, productoDocID string) ([]*models.SubProducto, error)
	CreateSubproducto(ctx context.Context, productoDocID string, sub *models.SubProducto) (string, error)
	UpdateSubproducto(ctx context.Context, productoDocID, subDocID string, fields map[string]any) error
	DeleteSubproducto(ctx context.Context, productoDocID, subDocID string) error
}

// AliadoRepository defines storage operations for allies.
type AliadoRepository interface {
	List(ctx context.Context) ([]*models.Aliado, error)
	GetByID(ctx context.Context, docID string) (*models.Aliado, error)
	Create(ctx context.Context, aliado *models.Aliado) (string, error)
	Update(ctx context.Context, docID string, fields map[string]any) error
	Delete(ctx context.Context, docID string) error
}

// CategoriaRepository defines storage operations for categories.
type CategoriaRepository interface {
	List(ctx context.Context) ([]*models.Categoria, error)
	GetByID(ctx context.Context, docID string) (*models.Categoria, error)
	Create(ctx context.Context, categoria *models.Categoria) (string, error)
	Update(ctx context.Context, docID string, fields map[string]any) error
	Delete(ctx context.Context, docID string) error
}

// NoticiaRepository defines storage operations for news entries.
// List returns newest-first (id descending).
type NoticiaRepository interface {
	List(ctx context.Context) ([]*models.Noticia, error)
	GetByID(ctx context.Context, docID string) (*models.Noticia, error)
	Create(ctx context.Context, noticia *models.Noticia) (string, error)
	Update(ctx context.Context, docID string, fields map[string]any) error
	Delete(ctx context.Context, docID string) error
}

// ProyectoRepository defines storage operations for projects.
type ProyectoRepository interface {
	List(ctx context.Context) ([]*models.Proyecto, error)
	GetByID(ctx context.Context, docID string) (*models.Proyecto, error)
	Create(ctx context.Context, proyecto *models.Proyecto) (string, error)
	Update(ctx context.Context, docID string, fields map[string]any) error
	Delete(ctx context.Context, docID string) error
}

// EmpresaRepository defines storage operations for the company-info
// singleton document. Get returns ErrNotFound when the document has never
// been written; the service bootstraps it with defaults in that case.
type EmpresaRepository interface {
	Get(ctx context.Context) (*models.Empresa, error)
	Create(ctx context.Context, empresa *models.Empresa) error
	Update(ctx context.Context, fields map[string]any) error
}

// AdminRepository defines storage operations for the admin-user mirror
// collection.
type AdminRepository interface {
	List(ctx context.Context) ([]*models.AdminUser, error)
	GetByUID(ctx context.Context, uid string) (*models.AdminUser, error)
	Create(ctx context.Context, user *models.AdminUser) (string, error)
	Delete(ctx context.Context, docID string) error
}

// CatalogImporter defines raw-document inserts used by the one-shot import
// tooling. Payloads are sanitized maps rather than typed models so that
// seed files with extra or missing fields round-trip unchanged.
type CatalogImporter interface {
	NextID(ctx context.Context, collection string) (int, error)
	InsertRaw(ctx context.Context, collection string, doc map[string]any) (string, error)
	InsertSubproductoRaw(ctx context.Context, productoDocID string, doc map[string]any) (string, error)
}
