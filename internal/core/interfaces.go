package core

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"waterwises-admin-go/internal/models"
)

// ProductoService defines product and subproduct operations, including the
// cascade delete of the subproductos subcollection and the interactive
// ally assignment.
type ProductoService interface {
	List(ctx context.Context) ([]*models.Producto, error)
	Get(ctx context.Context, docID string) (*models.Producto, error)
	Create(ctx context.Context, req models.ProductoRequest) (*models.Producto, error)
	Update(ctx context.Context, docID string, req models.ProductoRequest) error
	Delete(ctx context.Context, docID string) error
	SetAliado(ctx context.Context, docID, aliadoDocID string) error

	ListSubproductos(ctx context.Context, productoDocID string) ([]*models.SubProducto, error)
	CreateSubproducto(ctx context.Context, productoDocID string, req models.SubProductoRequest) (*models.SubProducto, error)
	UpdateSubproducto(ctx context.Context, productoDocID, subDocID string, req models.SubProductoRequest) error
	DeleteSubproducto(ctx context.Context, productoDocID, subDocID string) error
	SetSubproductoAliado(ctx context.Context, productoDocID, subDocID, aliadoDocID string) error
}

// AliadoService defines ally operations.
type AliadoService interface {
	List(ctx context.Context) ([]*models.Aliado, error)
	Get(ctx context.Context, docID string) (*models.Aliado, error)
	Create(ctx context.Context, req models.AliadoRequest) (*models.Aliado, error)
	Update(ctx context.Context, docID string, req models.AliadoRequest) error
	Delete(ctx context.Context, docID string) error
}

// CategoriaService defines category operations.
type CategoriaService interface {
	List(ctx context.Context) ([]*models.Categoria, error)
	Get(ctx context.Context, docID string) (*models.Categoria, error)
	Create(ctx context.Context, req models.CategoriaRequest) (*models.Categoria, error)
	Update(ctx context.Context, docID string, req models.CategoriaRequest) error
	Delete(ctx context.Context, docID string) error
}

// NoticiaService defines news operations. Listings are newest-first.
type NoticiaService interface {
	List(ctx context.Context) ([]*models.Noticia, error)
	Get(ctx context.Context, docID string) (*models.Noticia, error)
	Create(ctx context.Context, req models.NoticiaRequest) (*models.Noticia, error)
	Update(ctx context.Context, docID string, req models.NoticiaRequest) error
	Delete(ctx context.Context, docID string) error
}

// ProyectoService defines project operations.
type ProyectoService interface {
	List(ctx context.Context) ([]*models.Proyecto, error)
	Get(ctx context.Context, docID string) (*models.Proyecto, error)
	Create(ctx context.Context, req models.ProyectoRequest) (*models.Proyecto, error)
	Update(ctx context.Context, docID string, req models.ProyectoRequest) error
	Delete(ctx context.Context, docID string) error
}

// EmpresaService defines company-info operations. Get bootstraps the
// singleton with default sections on first access.
type EmpresaService interface {
	Get(ctx context.Context) (*models.Empresa, error)
	Update(ctx context.Context, req models.EmpresaRequest) error
}

// AdminService defines admin-user management: the two-step create against
// Firebase Auth plus the Firestore mirror record.
type AdminService interface {
	List(ctx context.Context) ([]*models.AdminUser, error)
	Create(ctx context.Context, req models.CreateAdminUserRequest) (*models.AdminUser, error)
	Delete(ctx context.Context, docID string) error
}

// AuthUserCreator is the slice of the Firebase Auth client used by
// AdminService, extracted so tests can substitute a fake.
type AuthUserCreator interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
}
