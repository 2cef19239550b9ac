package http

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mercadito/internal/application/usecase"
)

// SitemapHandler expone /sitemap.xml con las URLs del catálogo.
type SitemapHandler struct {
	uc      *usecase.ProductUseCase
	baseURL string
}

// NewSitemapHandler construye el handler. baseURL sin slash final.
func NewSitemapHandler(uc *usecase.ProductUseCase, baseURL string) *SitemapHandler {
	return &SitemapHandler{uc: uc, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Sitemap genera el XML del protocolo sitemaps.org: la portada más el detalle
// de cada producto, con lastmod desde updated_at.
func (h *SitemapHandler) Sitemap(c *fiber.Ctx) error {
	items, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("error al generar el sitemap")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")

	home := urlset.CreateElement("url")
	home.CreateElement("loc").SetText(h.baseURL + "/")

	for _, p := range items {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(fmt.Sprintf("%s/product/%s", h.baseURL, p.ID))
		u.CreateElement("lastmod").SetText(p.UpdatedAt.Format("2006-01-02"))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("error al generar el sitemap")
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(out)
}
