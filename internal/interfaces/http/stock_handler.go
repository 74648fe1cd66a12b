package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/laminasur/backoffice-api/internal/application/dto"
	"github.com/laminasur/backoffice-api/internal/application/stock"
	"github.com/laminasur/backoffice-api/internal/domain"
)

// StockHandler maneja las peticiones HTTP del ledger de stock.
type StockHandler struct {
	ledger *stock.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(ledger *stock.LedgerUseCase) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// RegisterMovement registra un movimiento de stock y actualiza el saldo de
// su referencia en una sola transacción. Un fallo de validación se reporta
// distinto de un fallo transaccional para que el caller decida si reenviar.
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ledger.RecordMovementFromRequest(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "TRANSACTION", Message: "Error en la transacción: " + err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Movimiento registrado y stock actualizado."})
}

// GetCurrentStock devuelve los saldos comprometidos ordenados por
// (tipo_producto, ancho, calibre, peso).
func (h *StockHandler) GetCurrentStock(c *fiber.Ctx) error {
	stocks, err := h.ledger.GetCurrentStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.CurrentStockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.NewCurrentStockResponse(s))
	}
	return c.JSON(out)
}

// ListMovements devuelve el log de movimientos para conciliación.
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	movs, err := h.ledger.ListMovements(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockMovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.NewStockMovementResponse(m))
	}
	return c.JSON(out)
}
