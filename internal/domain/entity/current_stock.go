package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrentStock es el saldo corriente de una referencia. Es un agregado
// derivado del log de movimientos (sin clave foránea); la disciplina
// transaccional del ledger es lo único que lo mantiene consistente.
type CurrentStock struct {
	ReferenciaID   string
	TipoProducto   string
	Ancho          *decimal.Decimal
	Calibre        *int
	Peso           *decimal.Decimal
	CantidadActual int
	LastUpdated    time.Time
}
