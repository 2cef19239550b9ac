package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL ventana de validez fija de los tokens de sesión.
const TokenTTL = time.Hour

// Errores de verificación. El consumidor decide qué hacer con la cookie:
// el gate de autenticación la limpia, el contexto ambiental solo degrada a "sin usuario".
var (
	ErrTokenInvalid = errors.New("jwt: token inválido")
	ErrTokenExpired = errors.New("jwt: token expirado")
)

// Claims incluye los claims estándar JWT más la identidad que necesitan
// los gates y las plantillas. El rol embebido es el vigente al momento de
// emisión: un cambio de rol en la base no se refleja hasta el próximo login.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // "client" | "seller"
}

// Generate genera un token JWT firmado (HS256) con expiración TokenTTL.
// El secret vacío es un error: nunca se firma con clave por defecto.
func Generate(secret, userID, username, role, issuer string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID:   userID,
		Username: username,
		Role:     role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna ErrTokenExpired si el token venció, ErrTokenInvalid para firma
// incorrecta, payload malformado o método de firma inesperado.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
