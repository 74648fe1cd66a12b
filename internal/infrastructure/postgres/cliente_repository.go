package postgres

import (
	"context"
	"fmt"

	"github.com/laminasur/backoffice-api/internal/domain"
	"github.com/laminasur/backoffice-api/internal/domain/entity"
	"github.com/laminasur/backoffice-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo directorio de clientes sobre PostgreSQL (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create inserta un cliente y devuelve su id. Nombre duplicado -> ErrDuplicate.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) (int64, error) {
	query := `
		INSERT INTO clientes (nombre, direccion, telefono, contacto)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, c.Nombre, c.Direccion, c.Telefono, c.Contacto).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert cliente: %w", err)
	}
	c.ID = id
	return id, nil
}

// List devuelve clientes ordenados por nombre; search filtra con ILIKE.
func (r *ClienteRepo) List(ctx context.Context, search string) ([]*entity.Cliente, error) {
	query := `
		SELECT id, nombre, COALESCE(direccion, ''), COALESCE(telefono, ''), COALESCE(contacto, ''), created_at
		FROM clientes ORDER BY nombre ASC`
	args := []any{}
	if search != "" {
		query = `
			SELECT id, nombre, COALESCE(direccion, ''), COALESCE(telefono, ''), COALESCE(contacto, ''), created_at
			FROM clientes WHERE nombre ILIKE $1 ORDER BY nombre ASC`
		args = append(args, "%"+search+"%")
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Direccion, &c.Telefono, &c.Contacto, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
