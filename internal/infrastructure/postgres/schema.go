package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen. Se ejecuta al arrancar la
// aplicación, como hacía el sistema anterior. Los atributos numéricos y los
// valores monetarios usan NUMERIC para mapear a decimal sin pérdida.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS stock_movements (
			id BIGSERIAL PRIMARY KEY,
			fecha DATE NOT NULL,
			turno TEXT NOT NULL,
			movement_type TEXT NOT NULL,
			tipo_producto TEXT NOT NULL,
			cantidad INTEGER NOT NULL,
			ancho NUMERIC,
			calibre INTEGER,
			peso NUMERIC,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS current_stock (
			referencia_id TEXT PRIMARY KEY,
			tipo_producto TEXT NOT NULL,
			ancho NUMERIC,
			calibre INTEGER,
			peso NUMERIC,
			cantidad_actual INTEGER NOT NULL,
			last_updated TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS sales_orders (
			id BIGSERIAL PRIMARY KEY,
			fecha_orden DATE NOT NULL,
			fecha_despacho DATE,
			cliente TEXT NOT NULL,
			core TEXT,
			oc TEXT,
			encargado_produccion TEXT,
			direccion_entrega TEXT,
			numero_remision TEXT,
			fecha_pago DATE,
			estado_factura TEXT,
			valor_total_factura NUMERIC,
			valor_abono NUMERIC DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS sales_order_items (
			id BIGSERIAL PRIMARY KEY,
			pedido_id BIGINT NOT NULL REFERENCES sales_orders(id) ON DELETE CASCADE,
			tipo_producto TEXT NOT NULL,
			cantidad INTEGER NOT NULL,
			ancho NUMERIC,
			calibre INTEGER,
			peso NUMERIC,
			precio_unitario NUMERIC,
			estado TEXT NOT NULL DEFAULT 'Pendiente',
			peso_neto NUMERIC
		)`,
		`CREATE TABLE IF NOT EXISTS clientes (
			id BIGSERIAL PRIMARY KEY,
			nombre TEXT NOT NULL UNIQUE,
			direccion TEXT,
			telefono TEXT,
			contacto TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
