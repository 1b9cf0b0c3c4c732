package core

import (
	"context"
	"fmt"

	"waterwises-admin-go/internal/db"
	"waterwises-admin-go/internal/models"
)

// proyectoService implements ProyectoService.
type proyectoService struct {
	proyectoRepo db.ProyectoRepository
}

// NewProyectoService creates a new ProyectoService instance.
func NewProyectoService(pr db.ProyectoRepository) ProyectoService {
	return &proyectoService{proyectoRepo: pr}
}

func proyectoFields(req models.ProyectoRequest) map[string]any {
	return map[string]any{
		"nombre":            req.Nombre,
		"descripcion":       req.Descripcion,
		"tipo":              req.Tipo,
		"ubicacion":         req.Ubicacion,
		"fecha":             req.Fecha,
		"detalles":          req.Detalles,
		"capacidad":         req.Capacidad,
		"historia":          req.Historia,
		"imagenPrincipal":   req.ImagenPrincipal,
		"imagen30proyectos": req.Imagen30Proyectos,
		"imagenesEquipos":   req.ImagenesEquipos,
		"equipos":           req.Equipos,
		"resumen":           req.Resumen,
		"linkNoticia":       req.LinkNoticia,
	}
}

func validateProyecto(req models.ProyectoRequest) error {
	if req.Nombre == "" {
		return fmt.Errorf("%w: nombre is required", ErrValidation)
	}
	if !models.ValidTipoProyecto(req.Tipo) {
		return fmt.Errorf("%w: tipo '%s' is not one of instalacion|mantenimiento|consultoria|venta", ErrValidation, req.Tipo)
	}
	return nil
}

func (s *proyectoService) List(ctx context.Context) ([]*models.Proyecto, error) {
	return s.proyectoRepo.List(ctx)
}

func (s *proyectoService) Get(ctx context.Context, docID string) (*models.Proyecto, error) {
	return s.proyectoRepo.GetByID(ctx, docID)
}

func (s *proyectoService) Create(ctx context.Context, req models.ProyectoRequest) (*models.Proyecto, error) {
	if err := validateProyecto(req); err != nil {
		return nil, err
	}
	proyecto := &models.Proyecto{
		Nombre:            req.Nombre,
		Descripcion:       req.Descripcion,
		Tipo:              req.Tipo,
		Ubicacion:         req.Ubicacion,
		Fecha:             req.Fecha,
		Detalles:          req.Detalles,
		Capacidad:         req.Capacidad,
		Historia:          req.Historia,
		ImagenPrincipal:   req.ImagenPrincipal,
		Imagen30Proyectos: req.Imagen30Proyectos,
		ImagenesEquipos:   req.ImagenesEquipos,
		Equipos:           req.Equipos,
		Resumen:           req.Resumen,
		LinkNoticia:       req.LinkNoticia,
	}
	docID, err := s.proyectoRepo.Create(ctx, proyecto)
	if err != nil {
		return nil, err
	}
	proyecto.DocID = docID
	return proyecto, nil
}

func (s *proyectoService) Update(ctx context.Context, docID string, req models.ProyectoRequest) error {
	if err := validateProyecto(req); err != nil {
		return err
	}
	return s.proyectoRepo.Update(ctx, docID, proyectoFields(req))
}

func (s *proyectoService) Delete(ctx context.Context, docID string) error {
	return s.proyectoRepo.Delete(ctx, docID)
}
