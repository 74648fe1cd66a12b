package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/laminasur/backoffice-api/internal/application/dto"
	"github.com/laminasur/backoffice-api/internal/domain"
	"github.com/laminasur/backoffice-api/internal/domain/entity"
	"github.com/laminasur/backoffice-api/internal/domain/repository"
)

// Recargo fijo aplicado a cada línea facturada (IVA 19%).
var recargoFactura = decimal.RequireFromString("1.19")

// OrderUseCase crea y consulta órdenes de venta con sus líneas.
type OrderUseCase struct {
	txRunner  SalesTxRunner
	orderRepo repository.SalesOrderRepository
}

// NewOrderUseCase construye el caso de uso. orderRepo se usa para lecturas
// y actualizaciones puntuales; la creación pasa por txRunner.
func NewOrderUseCase(txRunner SalesTxRunner, orderRepo repository.SalesOrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// CreateOrder inserta cabecera y líneas en una sola transacción y devuelve
// el id del pedido. El total facturado es Σ cantidad × precio × 1.19.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, in dto.CreateSalesOrderRequest) (int64, error) {
	if err := dto.Validate(in); err != nil {
		return 0, err
	}
	fechaOrden, err := time.Parse("2006-01-02", in.FechaOrden)
	if err != nil {
		return 0, fmt.Errorf("%w: fecha_orden %q", domain.ErrInvalidInput, in.FechaOrden)
	}

	total := decimal.Zero
	for _, it := range in.Items {
		linea := decimal.NewFromInt(int64(it.Cantidad)).Mul(it.PrecioUnitario).Mul(recargoFactura)
		total = total.Add(linea)
	}

	order := &entity.SalesOrder{
		FechaOrden:          fechaOrden,
		Cliente:             in.Cliente,
		Core:                in.Core,
		OC:                  in.OC,
		EncargadoProduccion: in.EncargadoProduccion,
		DireccionEntrega:    in.DireccionEntrega,
		ValorTotalFactura:   total,
		ValorAbono:          decimal.Zero,
	}

	var pedidoID int64
	err = uc.txRunner.RunSales(ctx, func(orderRepo repository.SalesOrderRepository) error {
		id, err := orderRepo.Create(ctx, order)
		if err != nil {
			return err
		}
		pedidoID = id
		for _, it := range in.Items {
			item := &entity.SalesOrderItem{
				PedidoID:       id,
				TipoProducto:   it.TipoProducto,
				Cantidad:       it.Cantidad,
				Ancho:          it.Ancho,
				Calibre:        it.Calibre.IntPtr(),
				Peso:           it.Peso,
				PrecioUnitario: it.PrecioUnitario,
				Estado:         entity.ItemEstadoPendiente,
			}
			if err := orderRepo.CreateItem(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrTransaction, err)
	}
	return pedidoID, nil
}

// ListWithItems devuelve las órdenes con sus líneas.
func (uc *OrderUseCase) ListWithItems(ctx context.Context) ([]*entity.SalesOrder, error) {
	return uc.orderRepo.ListWithItems(ctx)
}

// UpdatePayment actualiza estado de factura, fecha de pago y abono de una orden.
func (uc *OrderUseCase) UpdatePayment(ctx context.Context, id int64, in dto.UpdatePaymentRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	var fechaPago *time.Time
	if in.FechaPago != "" {
		f, err := time.Parse("2006-01-02", in.FechaPago)
		if err != nil {
			return fmt.Errorf("%w: fecha_pago %q", domain.ErrInvalidInput, in.FechaPago)
		}
		fechaPago = &f
	}
	return uc.orderRepo.UpdatePayment(ctx, id, in.EstadoFactura, fechaPago, in.ValorAbono)
}
