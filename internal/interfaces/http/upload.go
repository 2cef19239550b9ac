package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mercadito/internal/domain"
	"github.com/tu-usuario/mercadito/internal/infrastructure/storage"
	"github.com/valyala/fasthttp"
)

// maxImageSize límite de tamaño de imagen subida (2 MB).
const maxImageSize = 2 << 20

// allowedImageExt extensiones aceptadas y su content type canónico.
var allowedImageExt = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// validateImage revisa extensión, MIME declarado y tamaño. Corre ANTES de
// cualquier escritura: un archivo rechazado nunca llega al store ni a la DB.
func validateImage(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	want, ok := allowedImageExt[ext]
	if !ok {
		return domain.ErrUploadRejected
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != want {
		return domain.ErrUploadRejected
	}
	if fh.Size > maxImageSize {
		return domain.ErrUploadRejected
	}
	return nil
}

// saveUploadedImage procesa el campo multipart "image". El campo es opcional:
// campo ausente (o request sin multipart) devuelve (nil, nil); un body
// multipart que no se puede parsear es un error, no "sin imagen". Con archivo,
// valida y sube al store, devolviendo la URL con la que se persiste el producto.
func saveUploadedImage(c *fiber.Ctx, store storage.ImageStore) (*string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer formulario multipart: %w", err)
	}
	if err := validateImage(fh); err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir imagen subida: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("leer imagen subida: %w", err)
	}
	contentType := allowedImageExt[strings.ToLower(filepath.Ext(fh.Filename))]
	url, err := store.Save(c.Context(), fh.Filename, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("guardar imagen: %w", err)
	}
	return &url, nil
}
