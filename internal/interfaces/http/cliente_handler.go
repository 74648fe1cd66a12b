package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/laminasur/backoffice-api/internal/application/directory"
	"github.com/laminasur/backoffice-api/internal/application/dto"
	"github.com/laminasur/backoffice-api/internal/domain"
)

// ClienteHandler maneja las peticiones HTTP del directorio de clientes.
type ClienteHandler struct {
	uc *directory.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *directory.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create registra un cliente nuevo.
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "El nombre del cliente es requerido."})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "Ya existe un cliente con ese nombre."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// List devuelve clientes ordenados por nombre, con filtro ?search=.
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	clientes, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for _, cl := range clientes {
		out = append(out, dto.NewClienteResponse(cl))
	}
	return c.JSON(out)
}
