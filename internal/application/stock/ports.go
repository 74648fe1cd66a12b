package stock

import (
	"context"

	"github.com/laminasur/backoffice-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el log de movimientos y el
// saldo corriente se escriban como una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.CurrentStockRepository,
	) error) error
}
