package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mercadito/pkg/jwt"
)

// TokenCookie nombre de la cookie HTTP-only que transporta el token de sesión.
const TokenCookie = "token"

// Locals keys para los claims en Fiber.
const (
	localClaims      = "claims"
	localCurrentUser = "current_user"
)

// RequireAuth gate de autenticación: extrae el token de la cookie y lo
// verifica. Sin cookie redirige al login; con token inválido o expirado
// limpia la credencial y redirige. Con token válido deja los claims en
// c.Locals para los handlers y gates posteriores.
func RequireAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(TokenCookie)
		if tokenString == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			// Credencial inservible: limpiarla antes de volver al login.
			c.ClearCookie(TokenCookie)
			return c.Redirect("/login", fiber.StatusFound)
		}
		c.Locals(localClaims, claims)
		return c.Next()
	}
}

// RequireRole gate de autorización: compara el rol de los claims con el
// requerido, por igualdad exacta (conjunto cerrado, sin jerarquía). Debe
// componerse SIEMPRE después de RequireAuth; si los claims no están, la
// cadena se compuso mal y se falla cerrado con 500.
func RequireRole(expectedRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.Status(fiber.StatusInternalServerError).SendString("error interno del servidor")
		}
		if claims.Role != expectedRole {
			return c.Status(fiber.StatusForbidden).
				SendString(fmt.Sprintf("Acceso denegado: esta área requiere el rol %s.", expectedRole))
		}
		return c.Next()
	}
}

// CurrentUser middleware ambiental: intenta decodificar la cookie solo para
// poblar el usuario actual de las plantillas (saludo del nav). No es una
// frontera de seguridad: ante cualquier fallo degrada a "sin usuario" y, a
// diferencia de RequireAuth, jamás limpia la cookie ni rechaza la request.
func CurrentUser(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenString := c.Cookies(TokenCookie); tokenString != "" {
			if claims, err := jwt.Parse(jwtSecret, tokenString); err == nil {
				c.Locals(localCurrentUser, claims)
			}
		}
		return c.Next()
	}
}

// GetClaims devuelve los claims que dejó RequireAuth (nil si no corrió).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(localClaims).(*jwt.Claims)
	return claims
}

// AmbientUser devuelve el usuario ambiental para renderizado (nil sin sesión válida).
func AmbientUser(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(localCurrentUser).(*jwt.Claims)
	return claims
}

// bind arma el data de la plantilla incluyendo siempre el usuario ambiental.
func bind(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["User"] = AmbientUser(c)
	return data
}
