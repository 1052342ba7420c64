package repository

import (
	"context"

	"github.com/jhoicas/bodegas-api/internal/domain/entity"
)

// TransferRepository persiste el historial de traslados (solo inserción).
type TransferRepository interface {
	// Create asigna ID y marcas de tiempo al registro.
	Create(ctx context.Context, rec *entity.TransferRecord) error
}
