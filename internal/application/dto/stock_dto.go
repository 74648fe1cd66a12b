package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/laminasur/backoffice-api/internal/domain/entity"
)

// RegisterMovementRequest cuerpo de POST /api/products.
// ancho, calibre y peso son opcionales (null = atributo ausente).
type RegisterMovementRequest struct {
	Fecha        string           `json:"fecha"`
	Turno        string           `json:"turno"`
	MovementType string           `json:"movement_type"`
	TipoProducto string           `json:"tipo_producto"`
	Cantidad     FlexInt          `json:"cantidad"`
	Ancho        *decimal.Decimal `json:"ancho"`
	Calibre      *FlexInt         `json:"calibre"`
	Peso         *decimal.Decimal `json:"peso"`
}

// CurrentStockResponse fila de GET /api/stock.
type CurrentStockResponse struct {
	ReferenciaID   string           `json:"referencia_id"`
	TipoProducto   string           `json:"tipo_producto"`
	Ancho          *decimal.Decimal `json:"ancho"`
	Calibre        *int             `json:"calibre"`
	Peso           *decimal.Decimal `json:"peso"`
	CantidadActual int              `json:"cantidad_actual"`
	LastUpdated    time.Time        `json:"last_updated"`
}

// NewCurrentStockResponse mapea la entidad a la respuesta HTTP.
func NewCurrentStockResponse(s *entity.CurrentStock) CurrentStockResponse {
	return CurrentStockResponse{
		ReferenciaID:   s.ReferenciaID,
		TipoProducto:   s.TipoProducto,
		Ancho:          s.Ancho,
		Calibre:        s.Calibre,
		Peso:           s.Peso,
		CantidadActual: s.CantidadActual,
		LastUpdated:    s.LastUpdated,
	}
}

// StockMovementResponse fila de GET /api/stock-movements.
type StockMovementResponse struct {
	ID           int64            `json:"id"`
	Fecha        string           `json:"fecha"`
	Turno        string           `json:"turno"`
	MovementType string           `json:"movement_type"`
	TipoProducto string           `json:"tipo_producto"`
	Cantidad     int              `json:"cantidad"`
	Ancho        *decimal.Decimal `json:"ancho"`
	Calibre      *int             `json:"calibre"`
	Peso         *decimal.Decimal `json:"peso"`
	CreatedAt    time.Time        `json:"created_at"`
}

// NewStockMovementResponse mapea la entidad a la respuesta HTTP.
func NewStockMovementResponse(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:           m.ID,
		Fecha:        m.Fecha.Format("2006-01-02"),
		Turno:        m.Turno,
		MovementType: m.MovementType,
		TipoProducto: m.TipoProducto,
		Cantidad:     m.Cantidad,
		Ancho:        m.Ancho,
		Calibre:      m.Calibre,
		Peso:         m.Peso,
		CreatedAt:    m.CreatedAt,
	}
}
