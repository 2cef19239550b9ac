package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mercadito/internal/application/auth"
	"github.com/tu-usuario/mercadito/internal/application/dto"
	"github.com/tu-usuario/mercadito/internal/domain"
	"github.com/tu-usuario/mercadito/pkg/jwt"
)

// AuthHandler maneja registro, login y logout.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegisterPage renderiza el formulario de registro.
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return c.Render("register", bind(c, nil))
}

// LoginPage renderiza el formulario de login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", bind(c, nil))
}

// Register procesa el formulario de registro y redirige al login.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("formulario inválido")
	}
	if _, err := h.uc.Register(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			return c.Status(fiber.StatusConflict).SendString("el nombre de usuario ya está registrado")
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).SendString("usuario y contraseña son requeridos")
		default:
			return c.Status(fiber.StatusInternalServerError).SendString("error al registrar usuario")
		}
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// Login verifica credenciales, emite el token y lo deja como cookie HTTP-only.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("formulario inválido")
	}
	token, _, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusUnauthorized).SendString("usuario no encontrado")
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).SendString("contraseña incorrecta")
		default:
			return c.Status(fiber.StatusInternalServerError).SendString("error en el servidor")
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(jwt.TokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/", fiber.StatusFound)
}

// Logout limpia la cookie de sesión y vuelve al catálogo.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(TokenCookie)
	return c.Redirect("/", fiber.StatusFound)
}
