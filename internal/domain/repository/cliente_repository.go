package repository

import (
	"context"

	"github.com/laminasur/backoffice-api/internal/domain/entity"
)

// ClienteRepository directorio de clientes.
type ClienteRepository interface {
	// Create inserta un cliente y devuelve su id. Nombre duplicado
	// produce domain.ErrDuplicate.
	Create(ctx context.Context, c *entity.Cliente) (int64, error)
	// List devuelve clientes ordenados por nombre; search filtra por
	// coincidencia parcial sin distinguir mayúsculas.
	List(ctx context.Context, search string) ([]*entity.Cliente, error)
}
