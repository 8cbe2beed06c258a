package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cafeteria-panel/pkg/logger"
)

// Sin swagger.json el panel debe arrancar igual: el montaje de /docs se
// omite en vez de entrar en pánico.
func TestMountDocs_SinSpecNoEntraEnPanico(t *testing.T) {
	app := fiber.New()
	require.NotPanics(t, func() {
		mountDocs(app, logger.Nop(), filepath.Join(t.TempDir(), "no-existe.json"))
	})

	// El resto de rutas sigue sirviendo con normalidad.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Con el spec presente el middleware se monta sin pánico.
func TestMountDocs_ConSpecMonta(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "swagger.json")
	minimo := []byte(`{"openapi":"3.0.0","info":{"title":"Cafetería Panel","version":"1.0"},"paths":{}}`)
	require.NoError(t, os.WriteFile(spec, minimo, 0o644))

	app := fiber.New()
	require.NotPanics(t, func() {
		mountDocs(app, logger.Nop(), spec)
	})
}
