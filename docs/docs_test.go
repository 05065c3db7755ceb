package docs_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construmart/construmart-api/docs"
)

// La especificación embebida debe ser JSON válido y cubrir las rutas montadas
// por el router; si se queda vacía o corrupta, el arranque del servidor falla.
func TestSwaggerJSON_EspecificacionValida(t *testing.T) {
	require.NotEmpty(t, docs.SwaggerJSON, "la especificación embebida no puede estar vacía")

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(docs.SwaggerJSON, &spec))
	assert.Equal(t, "2.0", spec.Swagger)

	for _, path := range []string{
		"/api/customers",
		"/api/customers/verify",
		"/api/auth/login",
		"/api/tags",
		"/api/categories",
		"/api/products",
	} {
		assert.Contains(t, spec.Paths, path, "la especificación debe documentar %s", path)
	}
}

// El middleware de swagger se construye con el contenido embebido, sin leer
// del filesystem: debe montarse y servir la UI desde cualquier directorio.
func TestSwaggerJSON_ElMiddlewareMontaYSirve(t *testing.T) {
	app := fiber.New()
	require.NotPanics(t, func() {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FileContent: docs.SwaggerJSON,
			Path:        "docs",
			Title:       "Construmart API",
		}))
	}, "el montaje no debe depender de un swagger.json en disco")

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
