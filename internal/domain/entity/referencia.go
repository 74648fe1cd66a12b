package entity

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NA es el token que sustituye a un atributo ausente dentro de la clave.
const NA = "N/A"

// Referencia identifica una clase de producto por la tupla
// (tipo_producto, ancho, calibre, peso). Dos movimientos con valores
// idénticos (incluidos los nulos) pertenecen a la misma referencia.
type Referencia struct {
	TipoProducto string
	Ancho        *decimal.Decimal
	Calibre      *int
	Peso         *decimal.Decimal
}

// ID construye la clave determinística tipo-ancho-calibre-peso.
// Es la clave primaria de current_stock y debe ser estable entre
// reinicios del proceso.
func (r Referencia) ID() string {
	parts := [4]string{r.TipoProducto, NA, NA, NA}
	if r.Ancho != nil {
		parts[1] = r.Ancho.String()
	}
	if r.Calibre != nil {
		parts[2] = strconv.Itoa(*r.Calibre)
	}
	if r.Peso != nil {
		parts[3] = r.Peso.String()
	}
	return strings.Join(parts[:], "-")
}
