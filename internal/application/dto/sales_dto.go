package dto

import (
	"github.com/shopspring/decimal"

	"github.com/laminasur/backoffice-api/internal/domain/entity"
)

// SalesOrderItemRequest línea de una orden de venta nueva.
type SalesOrderItemRequest struct {
	TipoProducto   string           `json:"tipo_producto" validate:"required"`
	Cantidad       int              `json:"cantidad" validate:"gt=0"`
	Ancho          *decimal.Decimal `json:"ancho"`
	Calibre        *FlexInt         `json:"calibre"`
	Peso           *decimal.Decimal `json:"peso"`
	PrecioUnitario decimal.Decimal  `json:"precio_unitario"`
}

// CreateSalesOrderRequest cuerpo de POST /api/sales-orders.
type CreateSalesOrderRequest struct {
	FechaOrden          string                  `json:"fecha_orden" validate:"required"`
	Cliente             string                  `json:"cliente" validate:"required"`
	Core                string                  `json:"core"`
	OC                  string                  `json:"oc"`
	EncargadoProduccion string                  `json:"encargado_produccion"`
	DireccionEntrega    string                  `json:"direccion_entrega"`
	Items               []SalesOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdatePaymentRequest cuerpo de PUT /api/sales-orders/:id/payment.
type UpdatePaymentRequest struct {
	EstadoFactura string          `json:"estado_factura" validate:"required"`
	FechaPago     string          `json:"fecha_pago"`
	ValorAbono    decimal.Decimal `json:"valor_abono"`
}

// SalesOrderItemResponse línea en las respuestas de órdenes.
type SalesOrderItemResponse struct {
	ID             int64            `json:"id"`
	PedidoID       int64            `json:"pedido_id"`
	TipoProducto   string           `json:"tipo_producto"`
	Cantidad       int              `json:"cantidad"`
	Ancho          *decimal.Decimal `json:"ancho"`
	Calibre        *int             `json:"calibre"`
	Peso           *decimal.Decimal `json:"peso"`
	PrecioUnitario decimal.Decimal  `json:"precio_unitario"`
	Estado         string           `json:"estado"`
	PesoNeto       *decimal.Decimal `json:"peso_neto"`
}

// SalesOrderResponse cabecera con líneas de GET /api/sales-orders-with-items.
type SalesOrderResponse struct {
	ID                  int64                    `json:"id"`
	FechaOrden          string                   `json:"fecha_orden"`
	FechaDespacho       *string                  `json:"fecha_despacho"`
	Cliente             string                   `json:"cliente"`
	Core                string                   `json:"core"`
	OC                  string                   `json:"oc"`
	EncargadoProduccion string                   `json:"encargado_produccion"`
	DireccionEntrega    string                   `json:"direccion_entrega"`
	NumeroRemision      string                   `json:"numero_remision"`
	FechaPago           *string                  `json:"fecha_pago"`
	EstadoFactura       string                   `json:"estado_factura"`
	ValorTotalFactura   decimal.Decimal          `json:"valor_total_factura"`
	ValorAbono          decimal.Decimal          `json:"valor_abono"`
	Items               []SalesOrderItemResponse `json:"items"`
}

// NewSalesOrderResponse mapea la entidad (con líneas) a la respuesta HTTP.
func NewSalesOrderResponse(o *entity.SalesOrder) SalesOrderResponse {
	resp := SalesOrderResponse{
		ID:                  o.ID,
		FechaOrden:          o.FechaOrden.Format("2006-01-02"),
		Cliente:             o.Cliente,
		Core:                o.Core,
		OC:                  o.OC,
		EncargadoProduccion: o.EncargadoProduccion,
		DireccionEntrega:    o.DireccionEntrega,
		NumeroRemision:      o.NumeroRemision,
		EstadoFactura:       o.EstadoFactura,
		ValorTotalFactura:   o.ValorTotalFactura,
		ValorAbono:          o.ValorAbono,
		Items:               make([]SalesOrderItemResponse, 0, len(o.Items)),
	}
	if o.FechaDespacho != nil {
		s := o.FechaDespacho.Format("2006-01-02")
		resp.FechaDespacho = &s
	}
	if o.FechaPago != nil {
		s := o.FechaPago.Format("2006-01-02")
		resp.FechaPago = &s
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, SalesOrderItemResponse{
			ID:             it.ID,
			PedidoID:       it.PedidoID,
			TipoProducto:   it.TipoProducto,
			Cantidad:       it.Cantidad,
			Ancho:          it.Ancho,
			Calibre:        it.Calibre,
			Peso:           it.Peso,
			PrecioUnitario: it.PrecioUnitario,
			Estado:         it.Estado,
			PesoNeto:       it.PesoNeto,
		})
	}
	return resp
}
