package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/laminasur/backoffice-api/internal/domain"
	"github.com/laminasur/backoffice-api/internal/domain/entity"
	"github.com/laminasur/backoffice-api/internal/domain/repository"
)

// LedgerUseCase mantiene un saldo corriente por referencia en lockstep con
// el log de movimientos: cada registro inserta en stock_movements y aplica
// el delta con signo a current_stock dentro de la misma transacción, de
// modo que el saldo siempre es reconstruible a partir del log.
type LedgerUseCase struct {
	txRunner  TxRunner
	movRepo   repository.StockMovementRepository
	stockRepo repository.CurrentStockRepository
}

// NewLedgerUseCase construye el caso de uso. movRepo y stockRepo se usan
// solo para lecturas fuera de transacción; las escrituras pasan por txRunner.
func NewLedgerUseCase(
	txRunner TxRunner,
	movRepo repository.StockMovementRepository,
	stockRepo repository.CurrentStockRepository,
) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, movRepo: movRepo, stockRepo: stockRepo}
}

// MovementInput entrada para registrar un movimiento de stock.
// Ancho, Calibre y Peso son opcionales; nil significa atributo ausente y
// se refleja como N/A dentro de la clave de referencia.
type MovementInput struct {
	Fecha        string // YYYY-MM-DD
	Turno        string
	MovementType string
	TipoProducto string
	Cantidad     int
	Ancho        *decimal.Decimal
	Calibre      *int
	Peso         *decimal.Decimal
}

func (in MovementInput) validate() error {
	campos := []struct{ nombre, valor string }{
		{"fecha", in.Fecha},
		{"turno", in.Turno},
		{"movement_type", in.MovementType},
		{"tipo_producto", in.TipoProducto},
	}
	for _, c := range campos {
		if strings.TrimSpace(c.valor) == "" {
			return fmt.Errorf("%w: falta %s", domain.ErrInvalidInput, c.nombre)
		}
	}
	if in.Cantidad <= 0 {
		return fmt.Errorf("%w: cantidad debe ser un entero positivo", domain.ErrInvalidInput)
	}
	return nil
}

// RecordMovement registra el movimiento y actualiza el saldo de su
// referencia como una unidad atómica. El log guarda la cantidad sin signo
// tal como se recibió; el saldo recibe el delta con signo (Entrada suma,
// cualquier otro tipo resta). Si algo falla dentro de la transacción no
// queda estado parcial observable y se devuelve domain.ErrTransaction.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, in MovementInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, in.Fecha)
	}

	mov := &entity.StockMovement{
		Fecha:        fecha,
		Turno:        in.Turno,
		MovementType: in.MovementType,
		TipoProducto: in.TipoProducto,
		Cantidad:     in.Cantidad,
		Ancho:        in.Ancho,
		Calibre:      in.Calibre,
		Peso:         in.Peso,
	}
	ref := mov.Referencia()
	delta := mov.Delta()

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.CurrentStockRepository,
	) error {
		if _, err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		return stockRepo.ApplyDelta(ctx, ref, delta)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransaction, err)
	}
	return nil
}

// GetCurrentStock devuelve los saldos comprometidos, ordenados por
// (tipo_producto, ancho, calibre, peso). Solo lectura.
func (uc *LedgerUseCase) GetCurrentStock(ctx context.Context) ([]*entity.CurrentStock, error) {
	return uc.stockRepo.List(ctx)
}

// ListMovements devuelve el log de movimientos para conciliación.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.List(ctx, limit, offset)
}
