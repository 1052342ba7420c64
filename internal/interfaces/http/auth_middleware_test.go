package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/bodegas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/bodegas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "identidad-test"
	testExpMin    = 60
)

// buildActorApp aplicación mínima con ActorMiddleware y un handler que devuelve el actor resuelto.
func buildActorApp() *fiber.App {
	app := fiber.New()
	app.Get("/actor", apphttp.ActorMiddleware(testJWTSecret, testIssuer), func(c *fiber.Ctx) error {
		id, ok := apphttp.GetActorID(c)
		return c.JSON(fiber.Map{"autenticado": ok, "actor": id})
	})
	return app
}

// bearer genera un header Authorization para el usuario indicado.
func bearer(t *testing.T, userID int64) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func getActor(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/actor", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	_ = resp.Body.Close()
	return resp, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ActorMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Sin header la petición sigue como anónima.
func TestActorMiddleware_SinHeaderEsAnonimo(t *testing.T) {
	resp, body := getActor(t, buildActorApp(), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["autenticado"])
}

// Token válido: el actor queda en Locals.
func TestActorMiddleware_TokenValido(t *testing.T) {
	resp, body := getActor(t, buildActorApp(), bearer(t, 3))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["autenticado"])
	assert.EqualValues(t, 3, body["actor"])
}

func TestActorMiddleware_Rechazos(t *testing.T) {
	otroEmisor, err := pkgjwt.Generate(testJWTSecret, 3, "otro", testExpMin)
	require.NoError(t, err)
	vencido, err := pkgjwt.Generate(testJWTSecret, 3, testIssuer, -1)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"formato":     "Token abc",
		"vacío":       "Bearer   ",
		"malformado":  "Bearer token.invalido.aqui",
		"otro emisor": "Bearer " + otroEmisor,
		"vencido":     "Bearer " + vencido,
	} {
		t.Run(name, func(t *testing.T) {
			resp, body := getActor(t, buildActorApp(), header)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, false, body["success"])
		})
	}
}
