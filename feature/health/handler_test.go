package health

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	app := fiber.New()
	require.NoError(t, NewFeature().Load(app))

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", Path, nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "ok", string(body))
	}
}

func TestHandleHealth_MethodNotAllowed(t *testing.T) {
	app := fiber.New()
	require.NoError(t, NewFeature().Load(app))

	resp, err := app.Test(httptest.NewRequest("POST", Path, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}
