package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mercadito/internal/application/auth"
	"github.com/tu-usuario/mercadito/internal/application/usecase"
	"github.com/tu-usuario/mercadito/internal/domain/entity"
	"github.com/tu-usuario/mercadito/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	CatalogExport *usecase.CatalogExportUseCase
	Images        storage.ImageStore
	JWTSecret     string
	PublicBaseURL string
	// Límite por IP de las rutas de credenciales; cero aplica los defaults.
	CredsRPS   float64
	CredsBurst int
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	// Contexto ambiental: puebla el usuario de las plantillas en TODAS las
	// rutas. Pasivo: nunca limpia cookies ni rechaza (eso es de RequireAuth).
	app.Use(CurrentUser(deps.JWTSecret))

	authHandler := NewAuthHandler(deps.AuthUC)
	productHandler := NewProductHandler(deps.ProductUC, deps.CatalogExport, deps.Images)
	sitemapHandler := NewSitemapHandler(deps.ProductUC, deps.PublicBaseURL)

	// Navegación pública
	app.Get("/", productHandler.Index)
	app.Get("/register", authHandler.RegisterPage)
	app.Get("/login", authHandler.LoginPage)
	app.Get("/logout", authHandler.Logout)
	app.Get("/product/:id", productHandler.ProductPage)
	app.Get("/sitemap.xml", sitemapHandler.Sitemap)

	// Credenciales, limitadas por IP
	rps, burst := deps.CredsRPS, deps.CredsBurst
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	creds := RateLimit(rps, burst)
	app.Post("/register", creds, authHandler.Register)
	app.Post("/login", creds, authHandler.Login)

	// Área del vendedor: autenticación primero, rol exacto después.
	requireAuth := RequireAuth(deps.JWTSecret)
	requireSeller := RequireRole(entity.RoleSeller)

	admin := app.Group("/admin", requireAuth, requireSeller)
	admin.Get("/add-product", productHandler.AddProductPage)
	admin.Get("/edit-product/:id", productHandler.EditProductPage)
	admin.Get("/catalog.pdf", productHandler.CatalogPDF)

	app.Post("/products", requireAuth, requireSeller, productHandler.Create)
	app.Post("/products/update/:id", requireAuth, requireSeller, productHandler.Update)
	app.Post("/products/delete/:id", requireAuth, requireSeller, productHandler.Delete)
}
