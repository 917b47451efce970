package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apphttp "github.com/tu-usuario/inventario-pos/internal/interfaces/http"
	"github.com/tu-usuario/inventario-pos/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func appConRutaProtegida(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protegida", apphttp.AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
		})
	})
	return app
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := appConRutaProtegida(t)
	token, err := jwt.Generate(testSecret, "u1", "maria", []string{"staff"}, "inventario-pos", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "u1", out["user_id"], "el middleware deja el user_id en locals")
	assert.Equal(t, "maria", out["username"])
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := appConRutaProtegida(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.False(t, out.Success)
	assert.Equal(t, "Authorization header requerido", out.Error)
}

func TestAuthMiddleware_FormatoIncorrecto(t *testing.T) {
	app := appConRutaProtegida(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := appConRutaProtegida(t)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer no-es-un-jwt")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := appConRutaProtegida(t)
	token, err := jwt.Generate(testSecret, "u1", "maria", nil, "inventario-pos", -5)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_OtroSecreto(t *testing.T) {
	app := appConRutaProtegida(t)
	token, err := jwt.Generate("otro-secreto", "u1", "maria", nil, "inventario-pos", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
