package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cafeteria-panel/internal/domain"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/store"
)

// Tanto "12.34" como "12,34" deben parsear al mismo valor 12.34.
func TestParseAmount_PuntoYComaEquivalentes(t *testing.T) {
	conPunto, err := store.ParseAmount("12.34")
	require.NoError(t, err)

	conComa, err := store.ParseAmount("12,34")
	require.NoError(t, err)

	assert.True(t, conPunto.Equal(conComa),
		"12.34 y 12,34 deben parsear al mismo valor: %s vs %s", conPunto, conComa)
	assert.Equal(t, "12.34", conPunto.String())
}

func TestParseAmount_EnterosYEspacios(t *testing.T) {
	d, err := store.ParseAmount("  200 ")
	require.NoError(t, err)
	assert.Equal(t, "200", d.String())
}

// La política endurecida: entrada no parseable se rechaza como error de
// validación, nunca se convierte a 0.
func TestParseAmount_RechazaNoNumerico(t *testing.T) {
	casos := []string{"abc", "12,34,56", "12.34.56", "1,2.3", "", "   ", "5 kg"}
	for _, c := range casos {
		_, err := store.ParseAmount(c)
		assert.ErrorIs(t, err, domain.ErrInvalidInput,
			"%q debe rechazarse como entrada inválida", c)
	}
}

func TestParseAmount_RechazaNegativos(t *testing.T) {
	_, err := store.ParseAmount("-3")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "las cantidades negativas no son válidas")

	_, err = store.ParseAmount("-0,5")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseAmount_CeroEsValido(t *testing.T) {
	d, err := store.ParseAmount("0")
	require.NoError(t, err)
	assert.True(t, d.IsZero(), "cero parsea sin error; el caso de uso decide si lo permite")
}
