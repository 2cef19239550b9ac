// Package web embebe las plantillas HTML del catálogo. Las vistas son un
// colaborador deliberadamente mínimo: el marcado no es parte del contrato.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewEngine construye el motor de vistas de Fiber sobre las plantillas
// embebidas, con nombres sin extensión: index, login, product, etc.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		// embed garantiza el directorio; si falta, es un error de build
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
