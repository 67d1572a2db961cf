package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/gerenciamento-clientes/internal/interfaces/http"
	"github.com/jhoicas/gerenciamento-clientes/pkg/config"
)

func rateLimitedApp(cfg config.RateLimitConfig) *fiber.App {
	app := fiber.New()
	app.Get("/ping", apphttp.RateLimit(cfg), func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func ping(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	return resp
}

func TestRateLimit_ExcedeRajada_Retorna429(t *testing.T) {
	app := rateLimitedApp(config.RateLimitConfig{RPS: 0.1, Burst: 2})

	assert.Equal(t, http.StatusOK, ping(t, app).StatusCode)
	assert.Equal(t, http.StatusOK, ping(t, app).StatusCode)

	resp := ping(t, app)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "10", resp.Header.Get("Retry-After"))
}

func TestRateLimit_Desativado(t *testing.T) {
	app := rateLimitedApp(config.RateLimitConfig{})
	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, ping(t, app).StatusCode)
	}
}
