package postgres

import (
	"context"
	"fmt"

	"github.com/laminasur/backoffice-api/internal/domain/entity"
	"github.com/laminasur/backoffice-api/internal/domain/repository"
)

var _ repository.CurrentStockRepository = (*CurrentStockRepo)(nil)

// CurrentStockRepo saldos por referencia sobre PostgreSQL (usable con pool o tx).
type CurrentStockRepo struct {
	q Querier
}

// NewCurrentStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCurrentStockRepository(q Querier) *CurrentStockRepo {
	return &CurrentStockRepo{q: q}
}

// ApplyDelta inserta la fila con el delta inicial o incrementa
// cantidad_actual. Es una sola sentencia condicional: dos llamadas
// concurrentes sobre la misma referencia se serializan en la BD y ninguna
// se pierde.
func (r *CurrentStockRepo) ApplyDelta(ctx context.Context, ref entity.Referencia, delta int) error {
	query := `
		INSERT INTO current_stock (referencia_id, tipo_producto, ancho, calibre, peso, cantidad_actual, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (referencia_id)
		DO UPDATE SET cantidad_actual = current_stock.cantidad_actual + EXCLUDED.cantidad_actual, last_updated = now()`
	_, err := r.q.Exec(ctx, query, ref.ID(), ref.TipoProducto, ref.Ancho, ref.Calibre, ref.Peso, delta)
	if err != nil {
		return fmt.Errorf("apply stock delta: %w", err)
	}
	return nil
}

// List devuelve todas las filas ordenadas por (tipo_producto, ancho, calibre, peso).
func (r *CurrentStockRepo) List(ctx context.Context) ([]*entity.CurrentStock, error) {
	query := `
		SELECT referencia_id, tipo_producto, ancho, calibre, peso, cantidad_actual, last_updated
		FROM current_stock
		ORDER BY tipo_producto, ancho, calibre, peso`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list current stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.CurrentStock
	for rows.Next() {
		var s entity.CurrentStock
		if err := rows.Scan(
			&s.ReferenciaID, &s.TipoProducto, &s.Ancho, &s.Calibre, &s.Peso,
			&s.CantidadActual, &s.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan current stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
