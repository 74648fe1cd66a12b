package stock

import (
	"context"

	"github.com/laminasur/backoffice-api/internal/application/dto"
)

// RecordMovementFromRequest adapta el request HTTP al caso de uso
// RecordMovement(ctx, MovementInput). Usar desde handlers HTTP.
func (uc *LedgerUseCase) RecordMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) error {
	input := MovementInput{
		Fecha:        in.Fecha,
		Turno:        in.Turno,
		MovementType: in.MovementType,
		TipoProducto: in.TipoProducto,
		Cantidad:     in.Cantidad.Int(),
		Ancho:        in.Ancho,
		Calibre:      in.Calibre.IntPtr(),
		Peso:         in.Peso,
	}
	return uc.RecordMovement(ctx, input)
}
