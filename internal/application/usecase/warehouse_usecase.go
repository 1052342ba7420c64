package usecase

import (
	"context"

	"github.com/jhoicas/bodegas-api/internal/application/dto"
	"github.com/jhoicas/bodegas-api/internal/domain"
	"github.com/jhoicas/bodegas-api/internal/domain/repository"
)

// WarehouseUseCase consultas de bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List lista las bodegas activas ordenadas por nombre, con su responsable.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]*dto.WarehouseResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, domain.AsStorage("listar bodegas", err)
	}
	out := make([]*dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.NewWarehouseResponse(w))
	}
	return out, nil
}
