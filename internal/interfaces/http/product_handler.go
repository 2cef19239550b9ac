package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/mercadito/internal/application/dto"
	"github.com/tu-usuario/mercadito/internal/application/usecase"
	"github.com/tu-usuario/mercadito/internal/domain"
	"github.com/tu-usuario/mercadito/internal/infrastructure/storage"
)

// ProductHandler maneja el catálogo público y el área del vendedor.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	catalog *usecase.CatalogExportUseCase
	images  storage.ImageStore
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, catalog *usecase.CatalogExportUseCase, images storage.ImageStore) *ProductHandler {
	return &ProductHandler{uc: uc, catalog: catalog, images: images}
}

// Index renderiza el catálogo, con filtro opcional ?search=.
func (h *ProductHandler) Index(c *fiber.Ctx) error {
	term := c.Query("search")
	items, err := h.uc.Search(term, 50, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("error al buscar productos")
	}
	return c.Render("index", bind(c, fiber.Map{
		"Products":   items,
		"SearchTerm": term,
	}))
}

// ProductPage renderiza el detalle de un producto.
func (h *ProductHandler) ProductPage(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("error al cargar el producto")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).SendString("producto no encontrado")
	}
	return c.Render("product", bind(c, fiber.Map{"Product": out}))
}

// AddProductPage renderiza el formulario de alta (solo seller).
func (h *ProductHandler) AddProductPage(c *fiber.Ctx) error {
	return c.Render("add-product", bind(c, nil))
}

// EditProductPage renderiza el formulario de edición (solo seller).
func (h *ProductHandler) EditProductPage(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("error al cargar el producto")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).SendString("producto no encontrado")
	}
	return c.Render("edit-product", bind(c, fiber.Map{"Product": out}))
}

// Create guarda un producto nuevo con imagen opcional. La imagen se valida y
// se sube antes del INSERT; un archivo rechazado corta la request con 400.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	form, err := parseProductForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("datos de producto inválidos")
	}
	imageURL, err := saveUploadedImage(c, h.images)
	if err != nil {
		if errors.Is(err, domain.ErrUploadRejected) {
			return c.Status(fiber.StatusBadRequest).
				SendString("solo se permiten imágenes jpeg, jpg, png o webp de hasta 2 MB")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("error al guardar la imagen")
	}
	if _, err := h.uc.Create(dto.CreateProductRequest{
		Name:        form.name,
		Price:       form.price,
		Description: form.description,
		Stock:       form.stock,
		ImageURL:    imageURL,
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("error al guardar el producto")
	}
	return c.Redirect("/", fiber.StatusFound)
}

// Update reemplaza los campos del formulario. Si no llega imagen nueva, la
// existente queda intacta; si llega, se valida, se sube y reemplaza a la anterior.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	form, err := parseProductForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("datos de producto inválidos")
	}
	imageURL, err := saveUploadedImage(c, h.images)
	if err != nil {
		if errors.Is(err, domain.ErrUploadRejected) {
			return c.Status(fiber.StatusBadRequest).
				SendString("solo se permiten imágenes jpeg, jpg, png o webp de hasta 2 MB")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("error al guardar la imagen")
	}
	out, err := h.uc.Update(id, dto.UpdateProductRequest{
		Name:        form.name,
		Price:       form.price,
		Description: form.description,
		Stock:       form.stock,
		ImageURL:    imageURL,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("error al actualizar el producto")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).SendString("producto no encontrado")
	}
	return c.Redirect("/product/"+id, fiber.StatusFound)
}

// Delete elimina el producto y, si tenía imagen, la retira del store (best effort).
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	existing, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("error al eliminar el producto")
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("error al eliminar el producto")
	}
	if existing != nil && existing.ImageURL != nil {
		_ = h.images.Remove(c.Context(), *existing.ImageURL)
	}
	return c.Redirect("/", fiber.StatusFound)
}

// CatalogPDF descarga el catálogo completo en PDF (solo seller).
func (h *ProductHandler) CatalogPDF(c *fiber.Ctx) error {
	out, err := h.catalog.Export(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("error al generar el catálogo")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="catalogo.pdf"`)
	return c.Send(out)
}

// productForm campos comunes de alta y edición.
type productForm struct {
	name        string
	price       decimal.Decimal
	description string
	stock       int
}

// parseProductForm lee y valida los campos del formulario multipart.
func parseProductForm(c *fiber.Ctx) (*productForm, error) {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	price, err := decimal.NewFromString(strings.TrimSpace(c.FormValue("price")))
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	stock := 0
	if v := strings.TrimSpace(c.FormValue("stock")); v != "" {
		stock, err = strconv.Atoi(v)
		if err != nil || stock < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	return &productForm{
		name:        name,
		price:       price,
		description: c.FormValue("description"),
		stock:       stock,
	}, nil
}
