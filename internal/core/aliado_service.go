package core

import (
	"context"
	"fmt"

	"waterwises-admin-go/internal/db"
	"waterwises-admin-go/internal/models"
)

// aliadoService implements AliadoService.
type aliadoService struct {
	aliadoRepo db.AliadoRepository
}

// NewAliadoService creates a new AliadoService instance.
func NewAliadoService(ar db.AliadoRepository) AliadoService {
	return &aliadoService{aliadoRepo: ar}
}

func (s *aliadoService) List(ctx context.Context) ([]*models.Aliado, error) {
	return s.aliadoRepo.List(ctx)
}

func (s *aliadoService) Get(ctx context.Context, docID string) (*models.Aliado, error) {
	return s.aliadoRepo.GetByID(ctx, docID)
}

func (s *aliadoService) Create(ctx context.Context, req models.AliadoRequest) (*models.Aliado, error) {
	if req.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre is required", ErrValidation)
	}
	aliado := &models.Aliado{
		Nombre: req.Nombre,
		Logo:   req.Logo,
		URL:    req.URL,
	}
	docID, err := s.aliadoRepo.Create(ctx, aliado)
	if err != nil {
		return nil, err
	}
	aliado.DocID = docID
	return aliado, nil
}

func (s *aliadoService) Update(ctx context.Context, docID string, req models.AliadoRequest) error {
	if req.Nombre == "" {
		return fmt.Errorf("%w: nombre is required", ErrValidation)
	}
	return s.aliadoRepo.Update(ctx, docID, map[string]any{
		"nombre": req.Nombre,
		"logo":   req.Logo,
		"url":    req.URL,
	})
}

func (s *aliadoService) Delete(ctx context.Context, docID string) error {
	return s.aliadoRepo.Delete(ctx, docID)
}
