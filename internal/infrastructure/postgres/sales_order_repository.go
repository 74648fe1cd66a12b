package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/laminasur/backoffice-api/internal/domain"
	"github.com/laminasur/backoffice-api/internal/domain/entity"
	"github.com/laminasur/backoffice-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo órdenes de venta sobre PostgreSQL (usable con pool o tx).
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

// Create inserta la cabecera y devuelve el id del pedido.
func (r *SalesOrderRepo) Create(ctx context.Context, o *entity.SalesOrder) (int64, error) {
	query := `
		INSERT INTO sales_orders (fecha_orden, cliente, core, oc, encargado_produccion, valor_total_factura, direccion_entrega, valor_abono)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		o.FechaOrden, o.Cliente, o.Core, o.OC, o.EncargadoProduccion, o.ValorTotalFactura, o.DireccionEntrega, o.ValorAbono,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert sales order: %w", err)
	}
	o.ID = id
	return id, nil
}

// CreateItem inserta una línea del pedido.
func (r *SalesOrderRepo) CreateItem(ctx context.Context, item *entity.SalesOrderItem) error {
	query := `
		INSERT INTO sales_order_items (pedido_id, tipo_producto, cantidad, ancho, calibre, peso, precio_unitario, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		item.PedidoID, item.TipoProducto, item.Cantidad, item.Ancho, item.Calibre, item.Peso,
		item.PrecioUnitario, item.Estado,
	)
	if err != nil {
		return fmt.Errorf("insert sales order item: %w", err)
	}
	return nil
}

// ListWithItems devuelve las órdenes con sus líneas, más recientes primero.
func (r *SalesOrderRepo) ListWithItems(ctx context.Context) ([]*entity.SalesOrder, error) {
	query := `
		SELECT id, fecha_orden, fecha_despacho, cliente, COALESCE(core, ''), COALESCE(oc, ''),
		       COALESCE(encargado_produccion, ''), COALESCE(direccion_entrega, ''),
		       COALESCE(numero_remision, ''), fecha_pago,
		       COALESCE(estado_factura, ''), COALESCE(valor_total_factura, 0), COALESCE(valor_abono, 0)
		FROM sales_orders ORDER BY id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.SalesOrder
	byID := make(map[int64]*entity.SalesOrder)
	for rows.Next() {
		var o entity.SalesOrder
		if err := rows.Scan(
			&o.ID, &o.FechaOrden, &o.FechaDespacho, &o.Cliente, &o.Core, &o.OC,
			&o.EncargadoProduccion, &o.DireccionEntrega, &o.NumeroRemision, &o.FechaPago,
			&o.EstadoFactura, &o.ValorTotalFactura, &o.ValorAbono,
		); err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		o.Items = []*entity.SalesOrderItem{}
		orders = append(orders, &o)
		byID[o.ID] = &o
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemQuery := `
		SELECT id, pedido_id, tipo_producto, cantidad, ancho, calibre, peso,
		       COALESCE(precio_unitario, 0), estado, peso_neto
		FROM sales_order_items ORDER BY pedido_id, id`
	itemRows, err := r.q.Query(ctx, itemQuery)
	if err != nil {
		return nil, fmt.Errorf("list sales order items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it entity.SalesOrderItem
		if err := itemRows.Scan(
			&it.ID, &it.PedidoID, &it.TipoProducto, &it.Cantidad, &it.Ancho, &it.Calibre, &it.Peso,
			&it.PrecioUnitario, &it.Estado, &it.PesoNeto,
		); err != nil {
			return nil, fmt.Errorf("scan sales order item: %w", err)
		}
		if o, ok := byID[it.PedidoID]; ok {
			o.Items = append(o.Items, &it)
		}
	}
	return orders, itemRows.Err()
}

// UpdatePayment actualiza estado de factura, fecha de pago y abono.
func (r *SalesOrderRepo) UpdatePayment(ctx context.Context, id int64, estadoFactura string, fechaPago *time.Time, valorAbono decimal.Decimal) error {
	query := `
		UPDATE sales_orders SET estado_factura = $2, fecha_pago = $3, valor_abono = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, estadoFactura, fechaPago, valorAbono)
	if err != nil {
		return fmt.Errorf("update sales order payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
