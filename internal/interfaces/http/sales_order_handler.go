package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/laminasur/backoffice-api/internal/application/dto"
	"github.com/laminasur/backoffice-api/internal/application/sales"
	"github.com/laminasur/backoffice-api/internal/domain"
)

// SalesOrderHandler maneja las peticiones HTTP de órdenes de venta.
type SalesOrderHandler struct {
	uc *sales.OrderUseCase
}

// NewSalesOrderHandler construye el handler.
func NewSalesOrderHandler(uc *sales.OrderUseCase) *SalesOrderHandler {
	return &SalesOrderHandler{uc: uc}
}

// Create crea una orden con sus líneas en una sola transacción.
func (h *SalesOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.CreateOrder(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Datos de la orden de venta incompletos."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "TRANSACTION", Message: "Error en la transacción: " + err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"pedido_id": id})
}

// List devuelve las órdenes con sus líneas.
func (h *SalesOrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.uc.ListWithItems(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.SalesOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.NewSalesOrderResponse(o))
	}
	return c.JSON(out)
}

// UpdatePayment actualiza estado de factura, fecha de pago y abono.
func (h *SalesOrderHandler) UpdatePayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdatePayment(c.Context(), int64(id), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "orden actualizada"})
}
