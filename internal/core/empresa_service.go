package core

import (
	"context"
	"errors"

	"waterwises-admin-go/internal/db"
	"waterwises-admin-go/internal/models"
)

// empresaService implements EmpresaService over the company-info singleton.
type empresaService struct {
	empresaRepo db.EmpresaRepository
}

// NewEmpresaService creates a new EmpresaService instance.
func NewEmpresaService(er db.EmpresaRepository) EmpresaService {
	return &empresaService{empresaRepo: er}
}

// Get returns the company info, writing the default sections first if the
// document has never existed.
func (s *empresaService) Get(ctx context.Context) (*models.Empresa, error) {
	empresa, err := s.empresaRepo.Get(ctx)
	if err == nil {
		return empresa, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	defaults := models.DefaultEmpresa()
	if err := s.empresaRepo.Create(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

func (s *empresaService) Update(ctx context.Context, req models.EmpresaRequest) error {
	return s.empresaRepo.Update(ctx, map[string]any{
		"sobreNosotros": req.SobreNosotros,
		"mision":        req.Mision,
		"vision":        req.Vision,
		"objetivos":     req.Objetivos,
	})
}
