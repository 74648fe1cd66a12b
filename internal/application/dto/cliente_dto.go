package dto

import (
	"time"

	"github.com/laminasur/backoffice-api/internal/domain/entity"
)

// CreateClienteRequest cuerpo de POST /api/clientes.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Contacto  string `json:"contacto"`
}

// ClienteResponse fila de GET /api/clientes.
type ClienteResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Direccion string    `json:"direccion"`
	Telefono  string    `json:"telefono"`
	Contacto  string    `json:"contacto"`
	CreatedAt time.Time `json:"created_at"`
}

// NewClienteResponse mapea la entidad a la respuesta HTTP.
func NewClienteResponse(c *entity.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Direccion: c.Direccion,
		Telefono:  c.Telefono,
		Contacto:  c.Contacto,
		CreatedAt: c.CreatedAt,
	}
}
