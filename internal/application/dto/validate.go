package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/laminasur/backoffice-api/internal/domain"
)

var validate = validator.New()

// Validate aplica las etiquetas `validate` del struct y traduce el fallo
// a domain.ErrInvalidInput.
func Validate(s any) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
