package sales

import (
	"context"

	"github.com/laminasur/backoffice-api/internal/domain/repository"
)

// SalesTxRunner ejecuta una función dentro de una transacción de BD con el
// repositorio de órdenes atado a esa tx (cabecera y líneas se insertan
// juntas o no se insertan).
type SalesTxRunner interface {
	RunSales(ctx context.Context, fn func(orderRepo repository.SalesOrderRepository) error) error
}
