package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mercadito/internal/infrastructure/storage"
)

// uploadTestApp expone saveUploadedImage detrás de una ruta para ejercitarlo
// con requests reales.
func uploadTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/subir", func(c *fiber.Ctx) error {
		url, err := saveUploadedImage(c, store)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("error: " + err.Error())
		}
		if url == nil {
			return c.SendString("sin-imagen")
		}
		return c.SendString(*url)
	})
	return app
}

func TestSaveUploadedImage_CampoAusente_EsOpcional(t *testing.T) {
	app := uploadTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "Widget"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/subir", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "sin-imagen", string(b))
}

func TestSaveUploadedImage_SinMultipart_EsOpcional(t *testing.T) {
	app := uploadTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/subir", strings.NewReader("name=Widget"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "sin-imagen", string(b))
}

func TestSaveUploadedImage_MultipartTruncado_EsError(t *testing.T) {
	app := uploadTestApp(t)

	// Parte de archivo sin boundary de cierre: el parseo debe fallar, no
	// degradar en silencio a "sin imagen".
	body := "--frontera\r\n" +
		"Content-Disposition: form-data; name=\"image\"; filename=\"a.png\"\r\n" +
		"Content-Type: image/png\r\n\r\n" +
		"bytes-truncados"
	req := httptest.NewRequest(http.MethodPost, "/subir", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, "multipart/form-data; boundary=frontera")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(b), "error:")
}
