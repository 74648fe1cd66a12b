package postgres

import (
	"context"
	"fmt"

	"github.com/laminasur/backoffice-api/internal/domain/entity"
	"github.com/laminasur/backoffice-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo log append-only sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta el movimiento tal como se recibió (cantidad sin signo) y
// devuelve el id asignado por la BD. created_at lo pone el servidor.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) (int64, error) {
	query := `
		INSERT INTO stock_movements (fecha, turno, movement_type, tipo_producto, cantidad, ancho, calibre, peso)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		m.Fecha, m.Turno, m.MovementType, m.TipoProducto, m.Cantidad, m.Ancho, m.Calibre, m.Peso,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert stock movement: %w", err)
	}
	m.ID = id
	return id, nil
}

// List devuelve movimientos, más recientes primero.
func (r *StockMovementRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, fecha, turno, movement_type, tipo_producto, cantidad, ancho, calibre, peso, created_at
		FROM stock_movements ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.Fecha, &m.Turno, &m.MovementType, &m.TipoProducto,
			&m.Cantidad, &m.Ancho, &m.Calibre, &m.Peso, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
