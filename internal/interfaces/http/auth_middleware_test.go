package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/gerenciamento-clientes/internal/interfaces/http"
	"github.com/jhoicas/gerenciamento-clientes/pkg/config"
	pkgjwt "github.com/jhoicas/gerenciamento-clientes/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testSubject   = "backoffice-1"
	testIssuer    = "gerenciamento-clientes-test"
)

// buildProtectedApp monta uma rota /me atrás do AuthMiddleware que ecoa os locals.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, testIssuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"subject": apphttp.GetSubject(c),
			"role":    apphttp.GetRole(c),
		})
	})
	return app
}

func bearer(t *testing.T, secret, issuer string, ttl time.Duration) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testSubject, "operador", issuer, ttl)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

func getMe(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	resp := getMe(t, buildProtectedApp(), bearer(t, testJWTSecret, testIssuer, time.Hour))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testSubject, body["subject"])
	assert.Equal(t, "operador", body["role"])
}

func TestAuthMiddleware_SemHeader_Retorna401(t *testing.T) {
	resp := getMe(t, buildProtectedApp(), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TOKEN_AUSENTE")
}

func TestAuthMiddleware_TokensRejeitados(t *testing.T) {
	cases := map[string]string{
		"sem prefixo bearer": "token.qualquer",
		"malformado":         "Bearer token.invalido.aqui",
		"expirado":           bearer(t, testJWTSecret, testIssuer, -time.Minute),
		"secret incorreto":   bearer(t, "outro-secret-completamente-distinto", testIssuer, time.Hour),
		"issuer incorreto":   bearer(t, testJWTSecret, "outro-emissor", time.Hour),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			resp := getMe(t, buildProtectedApp(), header)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), "TOKEN_INVALIDO")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Router com JWT habilitado
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ComJWT_ExigeToken(t *testing.T) {
	app := buildApp(t, config.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer})

	resp := doJSON(t, app, http.MethodGet, "/api/clientes", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	req.Header.Set("Authorization", bearer(t, testJWTSecret, testIssuer, time.Hour))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestLogger_RegistraSubjectDoToken(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.New(&buf)))
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, testIssuer), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp := getMe(t, app, bearer(t, testJWTSecret, testIssuer, time.Hour))
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, testSubject, entry["subject"])
	assert.Equal(t, "operador", entry["role"])
	assert.Equal(t, float64(http.StatusNoContent), entry["status"])

	buf.Reset()
	resp = getMe(t, app, "")
	resp.Body.Close()
	entry = map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "subject", "sem token não há subject no log")
}
