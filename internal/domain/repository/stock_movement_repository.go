package repository

import (
	"context"

	"github.com/laminasur/backoffice-api/internal/domain/entity"
)

// StockMovementRepository log append-only de movimientos de stock.
type StockMovementRepository interface {
	// Create inserta un movimiento inmutable y devuelve el id asignado
	// por la base de datos.
	Create(ctx context.Context, m *entity.StockMovement) (int64, error)
	// List devuelve movimientos, más recientes primero (para conciliación).
	List(ctx context.Context, limit, offset int) ([]*entity.StockMovement, error)
}
