package store

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-panel/internal/domain"
)

// ParseAmount convierte la cantidad tecleada por el usuario a decimal.
// Acepta tanto "12.34" como "12,34" (separador decimal según el teclado del
// usuario). Cualquier otro contenido no numérico, más de un separador decimal
// o un valor negativo se rechaza como ErrInvalidInput; nunca se convierte
// silenciosamente a cero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("cantidad vacía: %w", domain.ErrInvalidInput)
	}

	normalized := strings.ReplaceAll(s, ",", ".")
	if strings.Count(normalized, ".") > 1 {
		return decimal.Zero, fmt.Errorf("cantidad %q con más de un separador decimal: %w", s, domain.ErrInvalidInput)
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cantidad %q no numérica: %w", s, domain.ErrInvalidInput)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("cantidad %q negativa: %w", s, domain.ErrInvalidInput)
	}
	return d, nil
}
