package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/mercadito/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "mercadito-test"
)

func TestGenerateAndParse_ConservaIdentidadYRol(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "alice", "seller", testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "seller", claims.Role, "el rol decodificado debe ser el de emisión")
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestGenerate_ExpiraEnUnaHora(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "alice", "client", testIssuer)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, pkgjwt.TokenTTL.Seconds(), ttl.Seconds(), 5,
		"la ventana de validez debe ser de una hora")
}

func TestGenerate_SecretVacioFalla(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "alice", "client", testIssuer)
	assert.Error(t, err, "nunca se firma con secret vacío")
}

func TestParse_TokenExpirado_RetornaErrTokenExpired(t *testing.T) {
	// Token vencido hace una hora, firmado con el mismo secret.
	claims := pkgjwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    testIssuer,
			IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID:   testUserID,
		Username: "alice",
		Role:     "seller",
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenExpired)
}

func TestParse_SecretIncorrecto_RetornaErrTokenInvalid(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "alice", "client", testIssuer)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}

func TestParse_PayloadMalformado_RetornaErrTokenInvalid(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}
