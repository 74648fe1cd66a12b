package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementEntrada = "Entrada" // suma al saldo
	MovementSalida  = "Salida"  // resta del saldo
)

// StockMovement es un registro del log append-only de movimientos.
// Guarda la cantidad sin signo tal como se recibió, con el tipo por
// separado; nunca se actualiza ni se borra.
type StockMovement struct {
	ID           int64
	Fecha        time.Time
	Turno        string
	MovementType string
	TipoProducto string
	Cantidad     int
	Ancho        *decimal.Decimal
	Calibre      *int
	Peso         *decimal.Decimal
	CreatedAt    time.Time
}

// Referencia deriva la referencia del movimiento.
func (m *StockMovement) Referencia() Referencia {
	return Referencia{
		TipoProducto: m.TipoProducto,
		Ancho:        m.Ancho,
		Calibre:      m.Calibre,
		Peso:         m.Peso,
	}
}

// Delta devuelve la cantidad con signo que el movimiento aplica al saldo:
// Entrada suma; cualquier otro tipo resta (comportamiento heredado del
// sistema anterior, ver DESIGN.md).
func (m *StockMovement) Delta() int {
	if m.MovementType == MovementEntrada {
		return m.Cantidad
	}
	return -m.Cantidad
}
