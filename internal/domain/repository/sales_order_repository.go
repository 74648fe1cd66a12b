package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/laminasur/backoffice-api/internal/domain/entity"
)

// SalesOrderRepository órdenes de venta con sus líneas.
type SalesOrderRepository interface {
	// Create inserta la cabecera y devuelve el id del pedido.
	Create(ctx context.Context, o *entity.SalesOrder) (int64, error)
	// CreateItem inserta una línea del pedido.
	CreateItem(ctx context.Context, item *entity.SalesOrderItem) error
	// ListWithItems devuelve las órdenes con sus líneas, más recientes primero.
	ListWithItems(ctx context.Context) ([]*entity.SalesOrder, error)
	// UpdatePayment actualiza estado de factura, fecha de pago y abono.
	UpdatePayment(ctx context.Context, id int64, estadoFactura string, fechaPago *time.Time, valorAbono decimal.Decimal) error
}
