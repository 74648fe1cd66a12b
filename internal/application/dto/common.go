package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/laminasur/backoffice-api/internal/domain"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FlexInt acepta números JSON o strings numéricos ("50" -> 50), como el
// parseo permisivo del sistema anterior.
type FlexInt int

// UnmarshalJSON implementa json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: valor no numérico %q", domain.ErrInvalidInput, s)
	}
	*n = FlexInt(v)
	return nil
}

// Int devuelve el valor como int.
func (n FlexInt) Int() int { return int(n) }

// IntPtr devuelve el valor como *int, conservando el nil.
func (n *FlexInt) IntPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}
