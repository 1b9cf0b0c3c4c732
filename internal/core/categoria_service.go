package core

import (
	"context"
	"fmt"

	"waterwises-admin-go/internal/db"
	"waterwises-admin-go/internal/models"
)

// categoriaService implements CategoriaService. Products reference
// categories by nombre; renaming a category does not rewrite the products
// that point at the old name.
type categoriaService struct {
	categoriaRepo db.CategoriaRepository
}

// NewCategoriaService creates a new CategoriaService instance.
func NewCategoriaService(cr db.CategoriaRepository) CategoriaService {
	return &categoriaService{categoriaRepo: cr}
}

func (s *categoriaService) List(ctx context.Context) ([]*models.Categoria, error) {
	return s.categoriaRepo.List(ctx)
}

func (s *categoriaService) Get(ctx context.Context, docID string) (*models.Categoria, error) {
	return s.categoriaRepo.GetByID(ctx, docID)
}

func (s *categoriaService) Create(ctx context.Context, req models.CategoriaRequest) (*models.Categoria, error) {
	if req.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre is required", ErrValidation)
	}
	categoria := &models.Categoria{Nombre: req.Nombre}
	docID, err := s.categoriaRepo.Create(ctx, categoria)
	if err != nil {
		return nil, err
	}
	categoria.DocID = docID
	return categoria, nil
}

func (s *categoriaService) Update(ctx context.Context, docID string, req models.CategoriaRequest) error {
	if req.Nombre == "" {
		return fmt.Errorf("%w: nombre is required", ErrValidation)
	}
	return s.categoriaRepo.Update(ctx, docID, map[string]any{"nombre": req.Nombre})
}

func (s *categoriaService) Delete(ctx context.Context, docID string) error {
	return s.categoriaRepo.Delete(ctx, docID)
}
