package core

import (
	"context"
	"fmt"

	"waterwises-admin-go/internal/db"
	"waterwises-admin-go/internal/models"
)

// noticiaService implements NoticiaService.
type noticiaService struct {
	noticiaRepo db.NoticiaRepository
}

// NewNoticiaService creates a new NoticiaService instance.
func NewNoticiaService(nr db.NoticiaRepository) NoticiaService {
	return &noticiaService{noticiaRepo: nr}
}

func noticiaFields(req models.NoticiaRequest) map[string]any {
	return map[string]any{
		"titulo":           req.Titulo,
		"resumen":          req.Resumen,
		"slug":             Slugify(req.Titulo),
		"imagenes":         req.Imagenes,
		"contenido":        req.Contenido,
		"enlacesOficiales": req.EnlacesOficiales,
	}
}

func (s *noticiaService) List(ctx context.Context) ([]*models.Noticia, error) {
	return s.noticiaRepo.List(ctx)
}

func (s *noticiaService) Get(ctx context.Context, docID string) (*models.Noticia, error) {
	return s.noticiaRepo.GetByID(ctx, docID)
}

func (s *noticiaService) Create(ctx context.Context, req models.NoticiaRequest) (*models.Noticia, error) {
	if req.Titulo == "" {
		return nil, fmt.Errorf("%w: titulo is required", ErrValidation)
	}
	noticia := &models.Noticia{
		Titulo:           req.Titulo,
		Resumen:          req.Resumen,
		Slug:             Slugify(req.Titulo),
		Imagenes:         req.Imagenes,
		Contenido:        req.Contenido,
		EnlacesOficiales: req.EnlacesOficiales,
	}
	docID, err := s.noticiaRepo.Create(ctx, noticia)
	if err != nil {
		return nil, err
	}
	noticia.DocID = docID
	return noticia, nil
}

func (s *noticiaService) Update(ctx context.Context, docID string, req models.NoticiaRequest) error {
	if req.Titulo == "" {
		return fmt.Errorf("%w: titulo is required", ErrValidation)
	}
	return s.noticiaRepo.Update(ctx, docID, noticiaFields(req))
}

func (s *noticiaService) Delete(ctx context.Context, docID string) error {
	return s.noticiaRepo.Delete(ctx, docID)
}
