package core

import (
	"context"
	"errors"
	"fmt"

	"waterwises-admin-go/internal/db"
	"waterwises-admin-go/internal/models"
)

// productoService implements ProductoService.
type productoService struct {
	productoRepo db.ProductoRepository
	aliadoRepo   db.AliadoRepository
}

// NewProductoService creates a new ProductoService instance.
func NewProductoService(pr db.ProductoRepository, ar db.AliadoRepository) ProductoService {
	return &productoService{productoRepo: pr, aliadoRepo: ar}
}

func productoFields(req models.ProductoRequest) map[string]any {
	return map[string]any{
		"nombre":           req.Nombre,
		"descripcion":      req.Descripcion,
		"descripcionLarga": req.DescripcionLarga,
		"imagen":           req.Imagen,
		"imagenes":         req.Imagenes,
		"slug":             Slugify(req.Nombre),
		"categoria":        req.Categoria,
		"modelo3d":         req.Modelo3D,
		"marcadores3d":     req.Marcadores3D,
		"pdf":              req.PDF,
		"qr":               req.QR,
		"formUrl":          req.FormURL,
		"marca":            req.Marca,
		"aliadoId":         req.AliadoID,
	}
}

func subProductoFields(req models.SubProductoRequest) map[string]any {
	return map[string]any{
		"nombre":           req.Nombre,
		"descripcion":      req.Descripcion,
		"descripcionLarga": req.DescripcionLarga,
		"imagen":           req.Imagen,
		"slug":             Slugify(req.Nombre),
		"modelo3d":         req.Modelo3D,
		"marcadores3d":     req.Marcadores3D,
		"pdf":              req.PDF,
		"qr":               req.QR,
		"formUrl":          req.FormURL,
		"marca":            req.Marca,
		"aliadoId":         req.AliadoID,
	}
}

func (s *productoService) List(ctx context.Context) ([]*models.Producto, error) {
	return s.productoRepo.List(ctx)
}

func (s *productoService) Get(ctx context.Context, docID string) (*models.Producto, error) {
	return s.productoRepo.GetByID(ctx, docID)
}

func (s *productoService) Create(ctx context.Context, req models.ProductoRequest) (*models.Producto, error) {
	if req.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre is required", ErrValidation)
	}

	producto := &models.Producto{
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		DescripcionLarga: req.DescripcionLarga,
		Imagen:           req.Imagen,
		Imagenes:         req.Imagenes,
		Slug:             Slugify(req.Nombre),
		Categoria:        req.Categoria,
		Modelo3D:         req.Modelo3D,
		Marcadores3D:     req.Marcadores3D,
		PDF:              req.PDF,
		QR:               req.QR,
		FormURL:          req.FormURL,
		Marca:            req.Marca,
		AliadoID:         req.AliadoID,
	}

	docID, err := s.productoRepo.Create(ctx, producto)
	if err != nil {
		return nil, err
	}
	producto.DocID = docID
	return producto, nil
}

func (s *productoService) Update(ctx context.Context, docID string, req models.ProductoRequest) error {
	if req.Nombre == "" {
		return fmt.Errorf("%w: nombre is required", ErrValidation)
	}
	return s.productoRepo.Update(ctx, docID, productoFields(req))
}

// Delete removes a product and its subproductos. Every subproduct is
// deleted before the product document itself; if any sub-delete fails the
// product delete does not proceed and the error propagates. Subproducts
// already removed by the time of the failure stay deleted.
func (s *productoService) Delete(ctx context.Context, docID string) error {
	subs, err := s.productoRepo.ListSubproductos(ctx, docID)
	if err != nil {
		return err
	}
	for _, sub := range subs {
		if err := s.productoRepo.DeleteSubproducto(ctx, docID, sub.DocID); err != nil {
			return fmt.Errorf("cascade delete of producto '%s' aborted: %w", docID, err)
		}
	}
	return s.productoRepo.Delete(ctx, docID)
}

// SetAliado resolves the ally and writes aliadoId and marca together, so
// the canonical reference and the display name cannot drift apart in a
// single interactive assignment.
func (s *productoService) SetAliado(ctx context.Context, docID, aliadoDocID string) error {
	aliado, err := s.aliadoRepo.GetByID(ctx, aliadoDocID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: '%s'", ErrAliadoNotFound, aliadoDocID)
		}
		return err
	}
	return s.productoRepo.Update(ctx, docID, map[string]any{
		"aliadoId": aliado.DocID,
		"marca":    aliado.Nombre,
	})
}

func (s *productoService) ListSubproductos(ctx context.Context, productoDocID string) ([]*models.SubProducto, error) {
	return s.productoRepo.ListSubproductos(ctx, productoDocID)
}

func (s *productoService) CreateSubproducto(ctx context.Context, productoDocID string, req models.SubProductoRequest) (*models.SubProducto, error) {
	if req.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre is required", ErrValidation)
	}
	// Ensure the parent exists before writing into its subcollection.
	if _, err := s.productoRepo.GetByID(ctx, productoDocID); err != nil {
		return nil, err
	}

	sub := &models.SubProducto{
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		DescripcionLarga: req.DescripcionLarga,
		Imagen:           req.Imagen,
		Slug:             Slugify(req.Nombre),
		Modelo3D:         req.Modelo3D,
		Marcadores3D:     req.Marcadores3D,
		PDF:              req.PDF,
		QR:               req.QR,
		FormURL:          req.FormURL,
		Marca:            req.Marca,
		AliadoID:         req.AliadoID,
	}

	docID, err := s.productoRepo.CreateSubproducto(ctx, productoDocID, sub)
	if err != nil {
		return nil, err
	}
	sub.DocID = docID
	return sub, nil
}

func (s *productoService) UpdateSubproducto(ctx context.Context, productoDocID, subDocID string, req models.SubProductoRequest) error {
	if req.Nombre == "" {
		return fmt.Errorf("%w: nombre is required", ErrValidation)
	}
	return s.productoRepo.UpdateSubproducto(ctx, productoDocID, subDocID, subProductoFields(req))
}

func (s *productoService) DeleteSubproducto(ctx context.Context, productoDocID, subDocID string) error {
	return s.productoRepo.DeleteSubproducto(ctx, productoDocID, subDocID)
}

func (s *productoService) SetSubproductoAliado(ctx context.Context, productoDocID, subDocID, aliadoDocID string) error {
	aliado, err := s.aliadoRepo.GetByID(ctx, aliadoDocID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: '%s'", ErrAliadoNotFound, aliadoDocID)
		}
		return err
	}
	return s.productoRepo.UpdateSubproducto(ctx, productoDocID, subDocID, map[string]any{
		"aliadoId": aliado.DocID,
		"marca":    aliado.Nombre,
	})
}
