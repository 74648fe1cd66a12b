package repository

import (
	"context"

	"github.com/laminasur/backoffice-api/internal/domain/entity"
)

// CurrentStockRepository saldo corriente por referencia.
type CurrentStockRepository interface {
	// ApplyDelta inserta la fila con el delta inicial o incrementa
	// cantidad_actual, en una sola sentencia condicional. No debe
	// implementarse como leer-calcular-escribir: dos llamadas
	// concurrentes sobre la misma referencia deben sumar ambas.
	ApplyDelta(ctx context.Context, ref entity.Referencia, delta int) error
	// List devuelve todas las filas ordenadas por
	// (tipo_producto, ancho, calibre, peso) ascendente.
	List(ctx context.Context) ([]*entity.CurrentStock, error)
}
