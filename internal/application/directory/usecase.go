package directory

import (
	"context"

	"github.com/laminasur/backoffice-api/internal/application/dto"
	"github.com/laminasur/backoffice-api/internal/domain/entity"
	"github.com/laminasur/backoffice-api/internal/domain/repository"
)

// ClienteUseCase gestiona el directorio de clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create registra un cliente nuevo y devuelve su id.
// Nombre duplicado produce domain.ErrDuplicate.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (int64, error) {
	if err := dto.Validate(in); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, &entity.Cliente{
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Contacto:  in.Contacto,
	})
}

// List devuelve los clientes ordenados por nombre; search filtra por
// coincidencia parcial sin distinguir mayúsculas.
func (uc *ClienteUseCase) List(ctx context.Context, search string) ([]*entity.Cliente, error) {
	return uc.repo.List(ctx, search)
}
