package dto

import (
	"time"

	"github.com/jhoicas/bodegas-api/internal/domain/entity"
)

// UserResponse datos públicos de un usuario (responsable de bodega).
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WarehouseResponse respuesta con datos de bodega.
type WarehouseResponse struct {
	ID            int64         `json:"id"`
	Name          string        `json:"nombre"`
	ResponsibleID int64         `json:"id_responsable"`
	Active        bool          `json:"estado"`
	CreatedBy     int64         `json:"created_by"`
	UpdatedBy     *int64        `json:"updated_by"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Responsible   *UserResponse `json:"responsable,omitempty"`
}

// NewWarehouseResponse mapea la entidad; nil si w es nil.
func NewWarehouseResponse(w *entity.Warehouse) *WarehouseResponse {
	if w == nil {
		return nil
	}
	out := &WarehouseResponse{
		ID:            w.ID,
		Name:          w.Name,
		ResponsibleID: w.ResponsibleID,
		Active:        w.Active,
		CreatedBy:     w.CreatedBy,
		UpdatedBy:     w.UpdatedBy,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
	if w.Responsible != nil {
		out.Responsible = &UserResponse{ID: w.Responsible.ID, Name: w.Responsible.Name, Email: w.Responsible.Email}
	}
	return out
}
