package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado inicial de una línea de pedido.
const ItemEstadoPendiente = "Pendiente"

// SalesOrder cabecera de una orden de venta con facturación y pagos.
type SalesOrder struct {
	ID                  int64
	FechaOrden          time.Time
	FechaDespacho       *time.Time
	Cliente             string
	Core                string
	OC                  string
	EncargadoProduccion string
	DireccionEntrega    string
	NumeroRemision      string
	FechaPago           *time.Time
	EstadoFactura       string
	ValorTotalFactura   decimal.Decimal
	ValorAbono          decimal.Decimal
	Items               []*SalesOrderItem
}

// SalesOrderItem línea de una orden de venta.
type SalesOrderItem struct {
	ID             int64
	PedidoID       int64
	TipoProducto   string
	Cantidad       int
	Ancho          *decimal.Decimal
	Calibre        *int
	Peso           *decimal.Decimal
	PrecioUnitario decimal.Decimal
	Estado         string
	PesoNeto       *decimal.Decimal
}
