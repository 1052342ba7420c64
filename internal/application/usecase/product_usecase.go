package usecase

import (
	"context"

	"github.com/jhoicas/bodegas-api/internal/application/dto"
	"github.com/jhoicas/bodegas-api/internal/domain"
	"github.com/jhoicas/bodegas-api/internal/domain/repository"
)

// ProductUseCase consultas de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista los productos activos con el total de unidades en todas las bodegas, mayor total primero.
func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.ListWithTotals(ctx)
	if err != nil {
		return nil, domain.AsStorage("listar productos", err)
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for i := range list {
		p := dto.NewProductResponse(&list[i].Product)
		total := list[i].Total
		p.Total = &total
		out = append(out, p)
	}
	return out, nil
}
