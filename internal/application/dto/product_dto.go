package dto

import (
	"time"

	"github.com/jhoicas/bodegas-api/internal/domain/entity"
)

// ProductResponse respuesta con datos de producto. Total solo viene en el listado.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nombre"`
	Description *string   `json:"descripcion"`
	Active      bool      `json:"estado"`
	CreatedBy   int64     `json:"created_by"`
	UpdatedBy   *int64    `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Total       *int64    `json:"total,omitempty"`
}

// NewProductResponse mapea la entidad; nil si p es nil.
func NewProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Active:      p.Active,
		CreatedBy:   p.CreatedBy,
		UpdatedBy:   p.UpdatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
